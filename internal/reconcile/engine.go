package reconcile

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gosh-sh/gosh-proposer/internal/eventlog"
	"github.com/gosh-sh/gosh-proposer/internal/extract"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/gosh-sh/gosh-proposer/internal/reconcile"

const (
	defaultConcurrency         = 8         // in-flight fetch and decode tasks
	defaultMaxBlocksPerRequest = 1000      // block span of one eth_getLogs query
	defaultDepositFunction     = "deposit" // ELock method matched by call deposits
)

// Engine re-derives the facts claimed by a proposal from chain state and
// emits a Verdict. The returned error is non-nil only for fatal outcomes
// (integrity failures and transport errors); every rejection is a Verdict.
type Engine interface {
	// CheckDeposit verifies an ETH to GOSH proposal. The headers of the
	// blocks it names are fetched and hash-checked, the ELock send counter
	// is read at both ends, and the Deposited logs of the half-open range
	// (from, till] are scanned and compared with the claimed transfers in
	// order.
	//
	// A header whose hash does not recompute, or a counter that went
	// backwards, is fatal and returned as an error wrapping
	// header.ErrHashMismatch or ErrCounterRegression.
	CheckDeposit(ctx context.Context, p DepositProposal) (Verdict, error)

	// CheckWithdrawal verifies a GOSH to ETH proposal. Both master block ids
	// are resolved to sequence numbers, the messages sent to the receiver over
	// [from, till) are decoded, and the burns found are compared with the
	// claimed ones in order. Messages that do not decode as a burn are
	// skipped.
	CheckWithdrawal(ctx context.Context, p WithdrawalProposal) (Verdict, error)

	// CheckCallDeposit checks a deposit proposal whose transfers were made by
	// direct calls to the lock contract instead of emitting events. Each
	// transaction must be claimed once, lie within the proposal range, call
	// the deposit function and have a successful receipt. Transactions that
	// are unknown, unmined or reverted are left out of the comparison
	// rather than rejected.
	CheckCallDeposit(ctx context.Context, p DepositProposal) (Verdict, error)
}

// Dependencies are the collaborators an engine reads from.
type Dependencies struct {
	// Source reads Ethereum headers, counters, logs and transactions.
	Source SourceChain
	// Target reads GOSH master blocks and the messages sent to the receiver.
	Target TargetChain
	// Decoder turns a message body into a named call. Used by withdrawals only.
	Decoder MessageDecoder
	// Resolver maps an Ethereum token root to its GOSH token metadata.
	Resolver extract.TokenResolver
	// Table holds the ELock events the deposit scan decodes.
	Table eventlog.Table
}

type config struct {
	lock                common.Address // ELock contract, required
	receiver            string         // GOSH burn receiver, required for withdrawals
	burnFunction        string         // message function counted as a burn
	depositFunction     string         // ELock method counted as a call deposit
	concurrency         int            // bound on in-flight tasks
	maxBlocksPerRequest uint64         // block span of one log query
	maxProposalSpan     uint64         // 0 means unbounded
}

// Option configures an engine.
type Option func(*config)

// WithLockAddress sets the ELock contract whose counters and logs are read.
//
// Default: none, the zero address matches nothing.
func WithLockAddress(addr common.Address) Option {
	return func(c *config) {
		c.lock = addr
	}
}

// WithReceiver sets the GOSH address that receives burn messages.
//
// Default: none, withdrawals find no burns without it.
func WithReceiver(addr string) Option {
	return func(c *config) {
		c.receiver = addr
	}
}

// WithBurnFunction overrides the burn call name. Empty values are ignored.
//
// Default: "burnTokens".
func WithBurnFunction(name string) Option {
	return func(c *config) {
		if name != "" {
			c.burnFunction = name
		}
	}
}

// WithDepositFunction overrides the ELock function matched by
// CheckCallDeposit. Empty values are ignored.
//
// Default: "deposit".
func WithDepositFunction(name string) Option {
	return func(c *config) {
		if name != "" {
			c.depositFunction = name
		}
	}
}

// WithConcurrency bounds the number of in-flight fetch and decode tasks.
// Non-positive values are ignored.
//
// Default: 8.
func WithConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithMaxBlocksPerRequest sets the block span of a single log query. Longer
// ranges are split into consecutive queries. Zero is ignored.
//
// Default: 1000.
func WithMaxBlocksPerRequest(n uint64) Option {
	return func(c *config) {
		if n > 0 {
			c.maxBlocksPerRequest = n
		}
	}
}

// WithMaxProposalSpan rejects proposals covering more than n blocks (or
// master sequence numbers). Such proposals get a ReasonInvalidRange verdict.
//
// Default: 0, no limit.
func WithMaxProposalSpan(n uint64) Option {
	return func(c *config) {
		c.maxProposalSpan = n
	}
}

type engine struct {
	deps   Dependencies
	cfg    config
	tracer trace.Tracer // one span per checked proposal
}

// Compile-time check to ensure *engine implements the Engine interface.
var _ Engine = (*engine)(nil)

// New returns an Engine reading from deps. Besides the Engine methods the
// result exposes Deposits and Burns, which re-derive the facts of a range
// without a proposal to compare against.
func New(deps Dependencies, opts ...Option) *engine {
	cfg := config{
		burnFunction:        extract.DefaultBurnFunction,
		depositFunction:     defaultDepositFunction,
		concurrency:         defaultConcurrency,
		maxBlocksPerRequest: defaultMaxBlocksPerRequest,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &engine{
		deps:   deps,
		cfg:    cfg,
		tracer: otel.Tracer(tracerName),
	}
}

func (e *engine) startSpan(ctx context.Context, name, key string) (context.Context, trace.Span) {
	return e.tracer.Start(ctx, name, trace.WithAttributes(attribute.String("proposal", key)))
}

// finish records the outcome on span and passes it through.
func finish(span trace.Span, v Verdict, err error) (Verdict, error) {
	defer span.End()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Verdict{}, err
	}

	span.SetAttributes(
		attribute.Bool("accepted", v.Accepted),
		attribute.String("reason", string(v.Reason)),
		attribute.String("stage", string(v.Stage)),
	)

	return v, nil
}

func (e *engine) exceedsSpan(start, end uint64) bool {
	return e.cfg.maxProposalSpan > 0 && end-start > e.cfg.maxProposalSpan
}

package cli

import (
	"context"
	"errors"
	"testing"

	relaytest "github.com/gosh-sh/gosh-proposer/internal/relay/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/urfave/cli/v3"
)

func TestStartCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		// Act
		cmd := startCommand(relaytest.NewService(t))

		// Assert
		assert.Equal(t, "start", cmd.Name)
		assert.Len(t, cmd.Flags, 0)
		assert.NotNil(t, cmd.Action)
	})

	t.Run("should return error when service start fails", func(t *testing.T) {
		// Arrange
		mockService := relaytest.NewService(t)
		expectedError := errors.New("service start error")

		mockService.EXPECT().Start(mock.Anything).Return(expectedError).Once()
		// Close should not be called if Start fails

		app := &cli.Command{
			Commands: []*cli.Command{startCommand(mockService)},
		}

		// Act
		err := app.Run(context.Background(), []string{"test", "start"})

		// Assert
		assert.ErrorIs(t, err, expectedError)
	})

	t.Run("should close the service when the context is cancelled", func(t *testing.T) {
		// Arrange
		mockService := relaytest.NewService(t)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		mockService.EXPECT().Start(mock.Anything).RunAndReturn(func(context.Context) error {
			cancel()
			return nil
		}).Once()
		mockService.EXPECT().Close().Return().Once()

		app := &cli.Command{
			Commands: []*cli.Command{startCommand(mockService)},
		}

		// Act
		err := app.Run(ctx, []string{"test", "start"})

		// Assert
		assert.NoError(t, err)
	})

	t.Run("should refuse to start without a voting service", func(t *testing.T) {
		app := &cli.Command{
			Commands: []*cli.Command{startCommand(nil)},
		}

		err := app.Run(context.Background(), []string{"test", "start"})
		assert.ErrorIs(t, err, ErrVotingDisabled)
	})
}

package board

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// BoardPort defines the interface other modules use to reach board
// functionality.
type BoardPort interface {
	Exists(ctx context.Context, boardID string) (bool, error)
}

// boardAdapter wraps the board module's service container for
// type-safe cross-module communication.
type boardAdapter struct {
	container mono.ServiceContainer
}

// NewBoardAdapter creates an adapter for board services. container is
// the board module's ServiceContainer received via
// SetDependencyServiceContainer.
func NewBoardAdapter(container mono.ServiceContainer) BoardPort {
	if container == nil {
		panic("board adapter requires non-nil ServiceContainer")
	}
	return &boardAdapter{container: container}
}

// Exists checks whether a post exists via the board.exists service.
func (a *boardAdapter) Exists(ctx context.Context, boardID string) (bool, error) {
	req := ExistsBoardRequest{ID: boardID}
	var resp ExistsBoardResponse

	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"exists",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return false, fmt.Errorf("exists service call failed: %w", err)
	}

	return resp.Exists, nil
}

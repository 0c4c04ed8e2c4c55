package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"kharcha/internal/core"
)

// QuickButtons returns the quick-add presets in display order.
func (s *Service) QuickButtons(ctx context.Context) ([]core.QuickButton, error) {
	raw, ok, err := s.store.Get(ctx, keyQuickButtons)
	if err != nil {
		return nil, fmt.Errorf("read quick buttons: %w", err)
	}
	if !ok {
		return core.DefaultQuickButtons(), nil
	}
	var buttons []core.QuickButton
	if err := json.Unmarshal([]byte(raw), &buttons); err != nil {
		slog.WarnContext(ctx, "Stored quick buttons unreadable, using defaults",
			"key", keyQuickButtons, "error", err)
		return core.DefaultQuickButtons(), nil
	}
	return buttons, nil
}

// AddQuickButton appends a preset and returns the updated list.
func (s *Service) AddQuickButton(ctx context.Context, b core.QuickButton) ([]core.QuickButton, error) {
	buttons, err := s.QuickButtons(ctx)
	if err != nil {
		return nil, err
	}
	buttons = append(buttons, b)
	if err := s.writeQuickButtons(ctx, buttons); err != nil {
		return nil, err
	}
	return buttons, nil
}

// RemoveQuickButton deletes the preset at index. An out-of-range index is a
// silent no-op.
func (s *Service) RemoveQuickButton(ctx context.Context, index int) ([]core.QuickButton, error) {
	buttons, err := s.QuickButtons(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(buttons) {
		return buttons, nil
	}
	buttons = append(buttons[:index], buttons[index+1:]...)
	if err := s.writeQuickButtons(ctx, buttons); err != nil {
		return nil, err
	}
	return buttons, nil
}

// UpdateQuickButton replaces the preset at index. An out-of-range index is a
// silent no-op.
func (s *Service) UpdateQuickButton(ctx context.Context, index int, b core.QuickButton) ([]core.QuickButton, error) {
	buttons, err := s.QuickButtons(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(buttons) {
		return buttons, nil
	}
	buttons[index] = b
	if err := s.writeQuickButtons(ctx, buttons); err != nil {
		return nil, err
	}
	return buttons, nil
}

func (s *Service) writeQuickButtons(ctx context.Context, buttons []core.QuickButton) error {
	if buttons == nil {
		buttons = []core.QuickButton{}
	}
	value, err := marshalJSON(buttons)
	if err != nil {
		return fmt.Errorf("encode quick buttons: %w", err)
	}
	if err := s.store.Set(ctx, keyQuickButtons, value); err != nil {
		return fmt.Errorf("write quick buttons: %w", err)
	}
	return nil
}

package domain

import (
	"fmt"
	"strings"
)

type RoomType string

const (
	RoomTypeSingle RoomType = "SINGLE"
	RoomTypeDouble RoomType = "DOUBLE"
)

// ParseRoomType accepts the enum names and the menu labels "1" and "2".
func ParseRoomType(s string) (RoomType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "1", string(RoomTypeSingle):
		return RoomTypeSingle, nil
	case "2", string(RoomTypeDouble):
		return RoomTypeDouble, nil
	default:
		return "", fmt.Errorf("unknown room type %q: %w", s, ErrInvalidArgument)
	}
}

func (t RoomType) Valid() bool {
	return t == RoomTypeSingle || t == RoomTypeDouble
}

type Room struct {
	Number     string   `json:"number"`
	PriceCents int64    `json:"price_cents"`
	Type       RoomType `json:"type"`
}

func NewRoom(number string, priceCents int64, roomType RoomType) (Room, error) {
	room := Room{Number: strings.TrimSpace(number), PriceCents: priceCents, Type: roomType}
	if err := room.Validate(); err != nil {
		return Room{}, err
	}
	return room, nil
}

// Validate checks the rules NewRoom enforces, for rooms built as literals.
func (r Room) Validate() error {
	if strings.TrimSpace(r.Number) == "" {
		return fmt.Errorf("room number is required: %w", ErrInvalidArgument)
	}
	if r.PriceCents < 0 {
		return fmt.Errorf("room price must not be negative: %w", ErrInvalidArgument)
	}
	if !r.Type.Valid() {
		return fmt.Errorf("unknown room type %q: %w", r.Type, ErrInvalidArgument)
	}
	return nil
}

// NewFreeRoom builds a courtesy room. It can be reserved but never shows up in listings.
func NewFreeRoom(number string, roomType RoomType) (Room, error) {
	return NewRoom(number, 0, roomType)
}

// IsAvailable reports whether the room belongs to the listed inventory.
func (r Room) IsAvailable() bool {
	return r.PriceCents > 0
}

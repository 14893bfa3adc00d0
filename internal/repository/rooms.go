package repository

import (
	"fmt"
	"sync"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/logger"
	"go.uber.org/zap"
)

// RoomInventory owns the rooms, keyed by room number.
type RoomInventory struct {
	mu     sync.RWMutex
	rooms  map[string]domain.Room
	order  []string
	logger *zap.Logger
}

func NewRoomInventory(log *zap.Logger) *RoomInventory {
	return &RoomInventory{
		rooms:  make(map[string]domain.Room),
		logger: logger.OrNop(log),
	}
}

// AddRoom inserts the room unless it is invalid or its number is already taken.
// Both cases are logged and reported by the false return; the stored room is left
// untouched.
func (inv *RoomInventory) AddRoom(room domain.Room) bool {
	if err := room.Validate(); err != nil {
		inv.logger.Warn("invalid room was not added", zap.String("room_number", room.Number), zap.Error(err))
		return false
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if _, exists := inv.rooms[room.Number]; exists {
		inv.logger.Warn("room already exists and was not added", zap.String("room_number", room.Number))
		return false
	}
	inv.rooms[room.Number] = room
	inv.order = append(inv.order, room.Number)
	return true
}

func (inv *RoomInventory) AddRooms(rooms []domain.Room) (int, error) {
	if len(rooms) == 0 {
		return 0, fmt.Errorf("room list must not be empty: %w", domain.ErrInvalidArgument)
	}
	for _, room := range rooms {
		if err := room.Validate(); err != nil {
			return 0, fmt.Errorf("room %q: %w", room.Number, err)
		}
	}
	added := 0
	for _, room := range rooms {
		if inv.AddRoom(room) {
			added++
		}
	}
	return added, nil
}

// ListRooms returns the listed inventory: rooms priced above zero.
func (inv *RoomInventory) ListRooms() []domain.Room {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	rooms := make([]domain.Room, 0, len(inv.order))
	for _, number := range inv.order {
		if room := inv.rooms[number]; room.IsAvailable() {
			rooms = append(rooms, room)
		}
	}
	return rooms
}

// ListAllRooms returns every room, free ones included.
func (inv *RoomInventory) ListAllRooms() []domain.Room {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	rooms := make([]domain.Room, 0, len(inv.order))
	for _, number := range inv.order {
		rooms = append(rooms, inv.rooms[number])
	}
	return rooms
}

func (inv *RoomInventory) GetRoom(number string) (domain.Room, bool) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	room, ok := inv.rooms[number]
	return room, ok
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Yaswanth6303/Timetable-Project/internal/models"
)

// RoomRepository stores rooms.
type RoomRepository struct {
	db *sqlx.DB
}

// NewRoomRepository creates a new room repository.
func NewRoomRepository(db *sqlx.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// Create inserts a room.
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	if room.ID == "" {
		room.ID = uuid.NewString()
	}
	if room.CreatedAt.IsZero() {
		room.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO rooms (id, room_number, block_number, room_type, capacity, created_at) VALUES (:id, :room_number, :block_number, :room_type, :capacity, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, room); err != nil {
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}

// FindByNumberAndBlock loads a room by its number within a block. Rooms are
// identified by this pair; the timetable references them the same way.
func (r *RoomRepository) FindByNumberAndBlock(ctx context.Context, roomNumber, blockNumber string) (*models.Room, error) {
	const query = `SELECT id, room_number, block_number, room_type, capacity, created_at FROM rooms WHERE room_number = $1 AND block_number = $2 LIMIT 1`
	var room models.Room
	if err := r.db.GetContext(ctx, &room, query, roomNumber, blockNumber); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find room by number and block: %w", err)
	}
	return &room, nil
}

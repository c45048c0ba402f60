package model

import (
	"time"

	"github.com/google/uuid"
)

// ThreadModel mirrors the 'threads' table.
type ThreadModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title     string    `gorm:"type:varchar(255)"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Members []ThreadMemberModel `gorm:"foreignKey:ThreadID"`
}

// TableName explicitly sets the table name for GORM.
func (ThreadModel) TableName() string {
	return "threads"
}

// ThreadMemberModel mirrors the 'thread_members' join table.
type ThreadMemberModel struct {
	ThreadID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ThreadMemberModel) TableName() string {
	return "thread_members"
}

// MessageModel mirrors the 'messages' table. Seq is a bigserial assigned by
// PostgreSQL, giving every message a thread-wide monotonic order the live
// feed can use as a watermark.
type MessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ThreadID  uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_thread_seq"`
	SenderID  uuid.UUID `gorm:"type:uuid;not null"`
	Body      string    `gorm:"type:text;not null"`
	Seq       int64     `gorm:"autoIncrement;index:idx_messages_thread_seq"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}

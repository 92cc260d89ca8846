package board

import (
	"time"

	"boardapi/internal/pagination"
)

const MaxTitleLength = 45

type Board struct {
	ID        int64     `json:"idx" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:45;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	OwnerID   *string   `json:"owner_id" gorm:"column:owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CanModify reports whether caller may update or delete a board owned by
// owner. A nil owner leaves the board open to everyone, anonymous callers
// included.
func CanModify(owner, caller *string) bool {
	if owner == nil {
		return true
	}
	return caller != nil && *caller == *owner
}

func (b *Board) ModifiableBy(caller *string) bool {
	return CanModify(b.OwnerID, caller)
}

type BoardRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type BoardListResponse struct {
	Boards     []*Board        `json:"boards"`
	Pagination pagination.Page `json:"pagination"`
}

package userstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/card-bridge/pkg/user"
)

// UserDao is a data access object that maps directly to the 'users' table in PostgreSQL.
type UserDao struct {
	bun.BaseModel `bun:"table:users,alias:u"`
	ID            int64     `bun:"id,pk,autoincrement"`
	WalletAddress string    `bun:"wallet_address,unique,notnull,type:varchar(42)"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toUserDao(usr *user.User) *UserDao {
	return &UserDao{
		WalletAddress: usr.WalletAddress,
		CreatedAt:     usr.CreatedAt,
	}
}

package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo campaigns for local development.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	statuses := []string{"draft", "pending", "active", "active", "paused", "failed"}
	platforms := []string{"facebook", "instagram", "audience_network"}

	for i := 1; i <= 12; i++ {
		id := uuid.NewString()
		name := fmt.Sprintf("Demo campaign %d", i)
		platform := platforms[r.Intn(len(platforms))]
		budget := int64((r.Intn(50) + 1) * 10000) // 100.00 to 5000.00 units
		status := statuses[r.Intn(len(statuses))]
		owner := fmt.Sprintf("user-%d", r.Intn(3)+1)
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, owner_id, name, platform, budget, status, deleted, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,false,now(),now()) ON CONFLICT DO NOTHING`,
			id, owner, name, platform, budget, status)
		if err != nil {
			return err
		}
	}
	return nil
}

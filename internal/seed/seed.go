package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/RohitShalgar4/campus360/internal/app/models"
)

// CreateDefaultData inserts the fixed budget categories so allocation
// updates never race category creation. Existing rows are left untouched.
func CreateDefaultData(ctx context.Context, db *pgxpool.Pool, lgr zerolog.Logger) error {
	for _, name := range models.AllowedBudgetCategories {
		tag, err := db.Exec(ctx,
			`INSERT INTO budget_categories (name, allocated, spent) VALUES ($1, 0, 0)
			 ON CONFLICT (name) DO NOTHING`, name)
		if err != nil {
			return fmt.Errorf("failed to seed budget category %s: %w", name, err)
		}
		if tag.RowsAffected() > 0 {
			lgr.Info().Str("category", name).Msg("Seeded budget category")
		}
	}

	return nil
}

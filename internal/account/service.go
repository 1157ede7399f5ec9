package account

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"critique-backend/internal/critiques"
	"critique-backend/internal/wireframes"
)

type Service struct {
	WireframeRepo wireframes.Repo
	CritiqueRepo  critiques.Repo
}

type ClaimResult struct {
	MigratedWireframes int `json:"migratedWireframes"`
	MigratedCritiques  int `json:"migratedCritiques"`
}

func NewService(wireframeRepo wireframes.Repo, critiqueRepo critiques.Repo) *Service {
	return &Service{WireframeRepo: wireframeRepo, CritiqueRepo: critiqueRepo}
}

func (s *Service) ClaimGuest(ctx context.Context, guestUserID, authedUserID string) (ClaimResult, error) {
	if strings.TrimSpace(guestUserID) == "" || strings.TrimSpace(authedUserID) == "" {
		return ClaimResult{}, errors.New("guestUserID and authedUserID are required")
	}

	if wfPG, ok := s.WireframeRepo.(*wireframes.PGRepo); ok && wfPG != nil && wfPG.DB != nil {
		if crPG, ok := s.CritiqueRepo.(*critiques.PGRepo); ok && crPG != nil && crPG.DB != nil {
			return claimWithTx(ctx, wfPG.DB, guestUserID, authedUserID)
		}
	}

	wfCount, err := s.WireframeRepo.ClaimGuest(ctx, guestUserID, authedUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	crCount, err := s.CritiqueRepo.ClaimGuest(ctx, guestUserID, authedUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	return ClaimResult{MigratedWireframes: wfCount, MigratedCritiques: crCount}, nil
}

func claimWithTx(ctx context.Context, db *sql.DB, guestUserID, authedUserID string) (ClaimResult, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return ClaimResult{}, err
	}
	defer tx.Rollback()

	wfRes, err := tx.ExecContext(ctx, `UPDATE wireframes SET user_id = $1 WHERE user_id = $2`, authedUserID, guestUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	wfCount, _ := wfRes.RowsAffected()

	crRes, err := tx.ExecContext(ctx, `UPDATE critiques SET user_id = $1 WHERE user_id = $2`, authedUserID, guestUserID)
	if err != nil {
		return ClaimResult{}, err
	}
	crCount, _ := crRes.RowsAffected()

	if err := tx.Commit(); err != nil {
		return ClaimResult{}, err
	}
	return ClaimResult{MigratedWireframes: int(wfCount), MigratedCritiques: int(crCount)}, nil
}

package repository

import (
	"context"

	"github.com/sa9r/storefront/internal/model"
)

type SessionRepository interface {
	Append(ctx context.Context, session model.AdminSession) error
	GetByToken(ctx context.Context, token string) (*model.AdminSession, error)
	// DeleteByToken is a no-op when the token is unknown. Expired sessions
	// are never garbage collected; they linger until an explicit logout.
	DeleteByToken(ctx context.Context, token string) error
}

type fileSessionRepo struct {
	col *collection[model.AdminSession]
}

func NewSessionRepository(dataDir string) SessionRepository {
	return &fileSessionRepo{col: newCollection[model.AdminSession](dataDir, "admin-sessions.json")}
}

func (r *fileSessionRepo) Append(ctx context.Context, session model.AdminSession) error {
	return r.col.Update(func(sessions []model.AdminSession) []model.AdminSession {
		return append(sessions, session)
	})
}

func (r *fileSessionRepo) GetByToken(ctx context.Context, token string) (*model.AdminSession, error) {
	sessions, err := r.col.List()
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		if sessions[i].Token == token {
			return &sessions[i], nil
		}
	}
	return nil, nil
}

func (r *fileSessionRepo) DeleteByToken(ctx context.Context, token string) error {
	return r.col.Update(func(sessions []model.AdminSession) []model.AdminSession {
		kept := sessions[:0]
		for _, s := range sessions {
			if s.Token != token {
				kept = append(kept, s)
			}
		}
		return kept
	})
}

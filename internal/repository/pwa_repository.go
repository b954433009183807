package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pages-alex-alex2006hw/gulliver/internal/model"
)

// Sort values the store understands. Anything else is normalized to
// SortNewest before it reaches the repository.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
	SortScore  = "score"
)

// ListQuery selects a page of records. A nil Skip means no OFFSET
// clause at all, which is not the same as Skip=0 for the SQL planner.
type ListQuery struct {
	Skip  *int
	Limit int
	Sort  string
}

type PwaRepository interface {
	GetByID(ctx context.Context, id string) (model.PWA, error)
	List(ctx context.Context, q ListQuery) ([]model.PWA, error)
	Upsert(ctx context.Context, pwa model.PWA) error
	Count(ctx context.Context) (int, error)
}

type pwaRepository struct {
	db dbtx
}

func NewPwaRepository(db dbtx) PwaRepository {
	return &pwaRepository{db: db}
}

const pwaColumns = `id, name, display_name, description, absolute_start_url, manifest_url, icon_url_128,
	 lighthouse_score, web_page_test, page_speed, created, updated`

func (r *pwaRepository) GetByID(ctx context.Context, id string) (model.PWA, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT `+pwaColumns+` FROM pwas WHERE id = ?`,
		id,
	)
	return scanPwa(row)
}

func (r *pwaRepository) List(ctx context.Context, q ListQuery) ([]model.PWA, error) {
	query := `SELECT ` + pwaColumns + ` FROM pwas`

	switch q.Sort {
	case SortOldest:
		query += " ORDER BY created ASC, id ASC"
	case SortScore:
		query += " ORDER BY lighthouse_score DESC, id DESC"
	default:
		query += " ORDER BY created DESC, id DESC"
	}

	var args []interface{}
	query += " LIMIT ?"
	args = append(args, q.Limit)
	if q.Skip != nil {
		query += " OFFSET ?"
		args = append(args, *q.Skip)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pwas []model.PWA
	for rows.Next() {
		pwa, err := scanPwaRows(rows)
		if err != nil {
			return nil, err
		}
		pwas = append(pwas, pwa)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return pwas, nil
}

func (r *pwaRepository) Upsert(ctx context.Context, pwa model.PWA) error {
	now := time.Now()
	created := pwa.Created
	if created.IsZero() {
		created = now
	}
	updated := pwa.Updated
	if updated.IsZero() {
		updated = now
	}

	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO pwas (id, name, display_name, description, absolute_start_url, manifest_url, icon_url_128,
		   lighthouse_score, web_page_test, page_speed, created, updated)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(manifest_url) DO UPDATE SET
		   name = excluded.name,
		   display_name = excluded.display_name,
		   description = excluded.description,
		   absolute_start_url = excluded.absolute_start_url,
		   icon_url_128 = excluded.icon_url_128,
		   lighthouse_score = excluded.lighthouse_score,
		   web_page_test = excluded.web_page_test,
		   page_speed = excluded.page_speed,
		   updated = excluded.updated`,
		pwa.ID,
		pwa.Name,
		pwa.DisplayName,
		pwa.Description,
		pwa.AbsoluteStartURL,
		pwa.ManifestURL,
		pwa.IconURL128,
		pwa.LighthouseScore,
		rawMessageArg(pwa.WebPageTest),
		rawMessageArg(pwa.PageSpeed),
		formatTime(created),
		formatTime(updated),
	)
	if err != nil {
		return fmt.Errorf("upsert pwa: %w", err)
	}
	return nil
}

func (r *pwaRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pwas`).Scan(&count)
	return count, err
}

func scanPwa(row *sql.Row) (model.PWA, error) {
	var p model.PWA
	var description, iconURL sql.NullString
	var webPageTest, pageSpeed sql.NullString
	var created, updated string

	err := row.Scan(
		&p.ID, &p.Name, &p.DisplayName, &description, &p.AbsoluteStartURL, &p.ManifestURL, &iconURL,
		&p.LighthouseScore, &webPageTest, &pageSpeed, &created, &updated,
	)
	if err != nil {
		return model.PWA{}, err
	}

	return fillPwa(p, description, iconURL, webPageTest, pageSpeed, created, updated)
}

func scanPwaRows(rows *sql.Rows) (model.PWA, error) {
	var p model.PWA
	var description, iconURL sql.NullString
	var webPageTest, pageSpeed sql.NullString
	var created, updated string

	err := rows.Scan(
		&p.ID, &p.Name, &p.DisplayName, &description, &p.AbsoluteStartURL, &p.ManifestURL, &iconURL,
		&p.LighthouseScore, &webPageTest, &pageSpeed, &created, &updated,
	)
	if err != nil {
		return model.PWA{}, err
	}

	return fillPwa(p, description, iconURL, webPageTest, pageSpeed, created, updated)
}

func fillPwa(p model.PWA, description, iconURL, webPageTest, pageSpeed sql.NullString, created, updated string) (model.PWA, error) {
	p.Description = description.String
	p.IconURL128 = iconURL.String
	if webPageTest.Valid && webPageTest.String != "" {
		p.WebPageTest = []byte(webPageTest.String)
	}
	if pageSpeed.Valid && pageSpeed.String != "" {
		p.PageSpeed = []byte(pageSpeed.String)
	}

	var err error
	p.Created, err = parseTime(created)
	if err != nil {
		return model.PWA{}, fmt.Errorf("parse created: %w", err)
	}
	p.Updated, err = parseTime(updated)
	if err != nil {
		return model.PWA{}, fmt.Errorf("parse updated: %w", err)
	}

	return p, nil
}

func rawMessageArg(raw []byte) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

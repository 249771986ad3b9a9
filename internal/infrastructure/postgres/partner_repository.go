package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

var _ repository.PartnerRepository = (*PartnerRepo)(nil)

const partnerColumns = `id, name, email, phone, address, role, created_by, created_at, updated_at`

// PartnerRepo implementación de PartnerRepository (proveedores y clientes en una sola tabla).
type PartnerRepo struct {
	q Querier
}

// NewPartnerRepository construye el adaptador.
func NewPartnerRepository(q Querier) *PartnerRepo {
	return &PartnerRepo{q: q}
}

func scanPartner(row pgx.Row) (*entity.Partner, error) {
	var p entity.Partner
	if err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Address, &p.Role, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un partner.
func (r *PartnerRepo) Create(ctx context.Context, p *entity.Partner) error {
	query := `
		INSERT INTO partners (` + partnerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Email, p.Phone, p.Address, p.Role, p.CreatedBy, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert partner: %w", err)
	}
	return nil
}

// GetByID obtiene un partner por ID.
func (r *PartnerRepo) GetByID(ctx context.Context, id string) (*entity.Partner, error) {
	row := r.q.QueryRow(ctx, `SELECT `+partnerColumns+` FROM partners WHERE id = $1`, id)
	return one(row, scanPartner, "get partner")
}

// Update actualiza un partner.
func (r *PartnerRepo) Update(ctx context.Context, p *entity.Partner) error {
	query := `
		UPDATE partners SET name = $2, email = $3, phone = $4, address = $5, role = $6, updated_at = $7
		WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, p.ID, p.Name, p.Email, p.Phone, p.Address, p.Role, p.UpdatedAt); err != nil {
		return fmt.Errorf("update partner: %w", err)
	}
	return nil
}

// List lista partners; role vacío no filtra.
func (r *PartnerRepo) List(ctx context.Context, role string, limit, offset int) ([]*entity.Partner, error) {
	query := `
		SELECT ` + partnerColumns + ` FROM partners
		WHERE ($1 = '' OR role = $1)
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, role, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	return collect(rows, scanPartner)
}

// Delete elimina un partner. Con facturas de proveedor asociadas devuelve domain.ErrConflict.
func (r *PartnerRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM partners WHERE id = $1`, id); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete partner: %w", err)
	}
	return nil
}

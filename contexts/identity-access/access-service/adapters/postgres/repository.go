package postgresadapter

import (
	"context"
	"errors"
	"log/slog"

	"campus/contexts/identity-access/access-service/domain/entities"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// slugCacheSize bounds the process-lifetime slug→organization cache.
// Slugs are stable, so entries are never invalidated; membership and role
// rows are always read fresh.
const slugCacheSize = 1024

type Repository struct {
	db        *gorm.DB
	logger    *slog.Logger
	slugCache *lru.Cache[string, entities.Organization]
}

func NewRepository(db *gorm.DB, logger *slog.Logger) (*Repository, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cache, err := lru.New[string, entities.Organization](slugCacheSize)
	if err != nil {
		return nil, err
	}
	return &Repository{
		db:        db,
		logger:    logger,
		slugCache: cache,
	}, nil
}

type organizationModel struct {
	OrgID string `gorm:"column:org_id;primaryKey"`
	Slug  string `gorm:"column:slug;uniqueIndex"`
}

func (organizationModel) TableName() string { return "organizations" }

func (m organizationModel) toEntity() entities.Organization {
	return entities.Organization{
		ID:   m.OrgID,
		Slug: m.Slug,
	}
}

type membershipModel struct {
	PrincipalID string `gorm:"column:principal_id;primaryKey"`
	OrgID       string `gorm:"column:org_id;primaryKey"`
	Role        string `gorm:"column:role"`
}

func (membershipModel) TableName() string { return "organization_memberships" }

func (m membershipModel) toEntity() entities.Membership {
	return entities.Membership{
		PrincipalID:    m.PrincipalID,
		OrganizationID: m.OrgID,
		Role:           m.Role,
	}
}

type superAdminModel struct {
	PrincipalID string `gorm:"column:principal_id;primaryKey"`
}

func (superAdminModel) TableName() string { return "super_admins" }

type orgFeatureModel struct {
	OrgID   string `gorm:"column:org_id;primaryKey"`
	Feature string `gorm:"column:feature;primaryKey"`
	Enabled bool   `gorm:"column:enabled"`
}

func (orgFeatureModel) TableName() string { return "organization_features" }

func (r *Repository) MembershipsOf(ctx context.Context, principalID string) ([]entities.Membership, error) {
	var rows []membershipModel
	if err := r.db.WithContext(ctx).
		Where("principal_id = ?", principalID).
		Find(&rows).
		Error; err != nil {
		return nil, r.classify("memberships_of", err)
	}
	items := make([]entities.Membership, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) OrganizationBySlug(ctx context.Context, slug string) (entities.Organization, bool, error) {
	if org, ok := r.slugCache.Get(slug); ok {
		return org, true, nil
	}

	var row organizationModel
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Organization{}, false, nil
		}
		return entities.Organization{}, false, r.classify("organization_by_slug", err)
	}

	org := row.toEntity()
	r.slugCache.Add(slug, org)
	return org, true, nil
}

func (r *Repository) OrganizationByID(ctx context.Context, orgID string) (entities.Organization, bool, error) {
	var row organizationModel
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Organization{}, false, nil
		}
		return entities.Organization{}, false, r.classify("organization_by_id", err)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) IsSuperAdmin(ctx context.Context, principalID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&superAdminModel{}).
		Where("principal_id = ?", principalID).
		Count(&count).
		Error; err != nil {
		return false, r.classify("is_super_admin", err)
	}
	return count > 0, nil
}

func (r *Repository) OrgFeatureEnabled(ctx context.Context, orgID string, feature string) (bool, error) {
	var row orgFeatureModel
	err := r.db.WithContext(ctx).
		Where("org_id = ? AND feature = ?", orgID, feature).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, r.classify("org_feature_enabled", err)
	}
	return row.Enabled, nil
}

// classify logs store failures with their SQLSTATE when postgres reports
// one, then hands the original error back for resolution-error wrapping
// upstream.
func (r *Repository) classify(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		r.logger.Error("postgres query failed",
			"event", "access_store_query_failed",
			"module", "identity-access/access-service",
			"layer", "adapter",
			"op", op,
			"sqlstate", pgErr.Code,
			"error", pgErr.Message,
		)
		return err
	}
	r.logger.Error("membership store query failed",
		"event", "access_store_query_failed",
		"module", "identity-access/access-service",
		"layer", "adapter",
		"op", op,
		"error", err.Error(),
	)
	return err
}

// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"
	"time"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/repository"
	"directory/internal/errors"
	"directory/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const (
	displayOrder = "featured DESC, priority DESC, created_at DESC, id DESC"
	recentOrder  = "created_at DESC, id DESC"
)

// featuredLockKey identifies the advisory lock taken around featured-limit checks.
const featuredLockKey int64 = 0x6665617475726564

const searchCondition = "(LOWER(business_name) LIKE ? ESCAPE '\\' OR LOWER(description) LIKE ? ESCAPE '\\' " +
	"OR LOWER(city) LIKE ? ESCAPE '\\' OR LOWER(category) LIKE ? ESCAPE '\\')"

// updatableColumns are written by Update. Slug, owner, views and the active
// flag have dedicated write paths.
var updatableColumns = []string{
	"business_name", "description", "city", "category",
	"website", "instagram", "facebook", "tiktok", "email", "phone",
	"images", "packages", "featured", "priority", "approved", "updated_at",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// listingRepository implements the repository.ListingRepository interface.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{
		db: db,
	}
}

// Create persists a new listing.
func (repo *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)
	if listingM.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate listing ID")
		}
		listingM.ID = id
	}

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		return translateListingWriteError(err, "failed to create listing")
	}

	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// Update writes the editable content and moderation fields of a listing.
func (repo *listingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)
	listingM.UpdatedAt = time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(listingM).
		Select(updatableColumns).
		Updates(listingM)
	if result.Error != nil {
		return translateListingWriteError(result.Error, "failed to update listing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// Delete removes a listing.
func (repo *listingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ListingModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete listing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// DeleteMany removes the listings with the given ids.
func (repo *listingRepository) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.ListingModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete listings")
	}

	return result.RowsAffected, nil
}

// DeleteByUser removes every listing of a user.
func (repo *listingRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.ListingModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete user listings")
	}

	return result.RowsAffected, nil
}

// FindByID retrieves a listing by id.
func (repo *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	return repo.first(repo.db.WithContext(ctx).Where("id = ?", id), "failed to find listing by ID")
}

// Reload retrieves a listing by id from the primary database, bypassing read replicas.
func (repo *listingRepository) Reload(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	return repo.first(repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("id = ?", id), "failed to reload listing")
}

// FindBySlug retrieves a listing by slug.
func (repo *listingRepository) FindBySlug(ctx context.Context, slug string) (*entity.Listing, error) {
	return repo.first(repo.db.WithContext(ctx).Where("slug = ?", slug), "failed to find listing by slug")
}

// FindActiveByUser retrieves the active listing of a user.
func (repo *listingRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.Listing, error) {
	return repo.first(
		repo.db.WithContext(ctx).Where("user_id = ? AND is_active = ?", userID, true),
		"failed to find active listing by user",
	)
}

// FindByUser retrieves every listing of a user, newest first.
func (repo *listingRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Listing, error) {
	var listingsM []*model.ListingModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&listingsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings by user")
	}

	return toListingDomains(listingsM), nil
}

// SlugExists reports whether a slug is already in use.
func (repo *listingRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check listing slug")
	}

	return count > 0, nil
}

// Find returns the listings matching the filter in display order.
func (repo *listingRepository) Find(ctx context.Context, filter entity.ListingFilter, offset, limit int) ([]*entity.Listing, error) {
	var listingsM []*model.ListingModel

	query := applyListingFilter(repo.db.WithContext(ctx), filter).
		Order(displayOrder).
		Offset(offset).
		Limit(limit)

	if err := query.Find(&listingsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings")
	}

	return toListingDomains(listingsM), nil
}

// Recent returns the newest listings in any state.
func (repo *listingRepository) Recent(ctx context.Context, limit int) ([]*entity.Listing, error) {
	var listingsM []*model.ListingModel

	if err := repo.db.WithContext(ctx).
		Order(recentOrder).
		Limit(limit).
		Find(&listingsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent listings")
	}

	return toListingDomains(listingsM), nil
}

// Count returns the number of listings matching the filter.
func (repo *listingRepository) Count(ctx context.Context, filter entity.ListingFilter) (int64, error) {
	var count int64

	query := applyListingFilter(repo.db.WithContext(ctx).Model(&model.ListingModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count listings")
	}

	return count, nil
}

// FindBatch returns a keyset page of listings with the given active state.
func (repo *listingRepository) FindBatch(ctx context.Context, active bool, after uuid.UUID, limit int) ([]*entity.Listing, error) {
	var listingsM []*model.ListingModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ? AND id > ?", active, after).
		Order("id ASC").
		Limit(limit).
		Find(&listingsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listing batch")
	}

	return toListingDomains(listingsM), nil
}

// IncrementViews atomically adds one to the views counter.
func (repo *listingRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment listing views")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// SetActive flips the active flag when it differs from the stored value.
func (repo *listingRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ? AND is_active = ?", id, !active).
		Updates(map[string]any{
			"is_active":  active,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, translateListingWriteError(result.Error, "failed to set listing active state")
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ListingModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check listing existence")
	}
	if count == 0 {
		return false, repository.ErrListingNotFound
	}

	return false, nil
}

// SetFlags updates moderation flags of the given listings.
func (repo *listingRepository) SetFlags(ctx context.Context, ids []uuid.UUID, flags repository.ListingFlags) (int64, error) {
	updates := map[string]any{}
	if flags.Approved != nil {
		updates["approved"] = *flags.Approved
	}
	if flags.Featured != nil {
		updates["featured"] = *flags.Featured
	}
	if len(ids) == 0 || len(updates) == 0 {
		return 0, nil
	}
	updates["updated_at"] = time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id IN ?", ids).
		Updates(updates)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to update listing flags")
	}

	return result.RowsAffected, nil
}

// LockFeatured takes a transaction scoped advisory lock. SQLite serializes
// writers on its own, so the lock is only taken on PostgreSQL.
func (repo *listingRepository) LockFeatured(ctx context.Context) error {
	if repo.db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := repo.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(?)", featuredLockKey).Error; err != nil {
		return errors.Wrap(err, "failed to lock featured listings")
	}

	return nil
}

// SetPriority updates the ranking priority of a listing.
func (repo *listingRepository) SetPriority(ctx context.Context, id uuid.UUID, priority int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"priority":   priority,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update listing priority")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

type listingStatsRow struct {
	Total           int64
	Active          int64
	Inactive        int64
	Featured        int64
	PendingApproval int64
	RecentSignups   int64
}

// Stats returns the dashboard counters.
func (repo *listingRepository) Stats(ctx context.Context, since time.Time) (*entity.ListingStats, error) {
	var row listingStatsRow

	if err := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Select(`COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN is_active THEN 1 ELSE 0 END), 0) AS active,
			COALESCE(SUM(CASE WHEN is_active THEN 0 ELSE 1 END), 0) AS inactive,
			COALESCE(SUM(CASE WHEN featured THEN 1 ELSE 0 END), 0) AS featured,
			COALESCE(SUM(CASE WHEN approved THEN 0 ELSE 1 END), 0) AS pending_approval,
			COALESCE(SUM(CASE WHEN created_at > ? THEN 1 ELSE 0 END), 0) AS recent_signups`, since.UTC()).
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute listing stats")
	}

	return &entity.ListingStats{
		Total:           row.Total,
		Active:          row.Active,
		Inactive:        row.Inactive,
		Featured:        row.Featured,
		PendingApproval: row.PendingApproval,
		RecentSignups:   row.RecentSignups,
	}, nil
}

type valueCountRow struct {
	Value    string
	Listings int64
}

// CountByGroup returns listing counts per value of the column, largest first.
func (repo *listingRepository) CountByGroup(ctx context.Context, group repository.ListingGroup, limit int) ([]entity.ValueCount, error) {
	column, err := groupColumn(group)
	if err != nil {
		return nil, err
	}

	var rows []valueCountRow
	if err := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Select(column + " AS value, COUNT(*) AS listings").
		Group(column).
		Order("listings DESC, value ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to count listings by %s", column)
	}

	counts := make([]entity.ValueCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, entity.ValueCount{Value: row.Value, Count: row.Listings})
	}

	return counts, nil
}

// MostViewed returns the visible listings with the highest views counter.
func (repo *listingRepository) MostViewed(ctx context.Context, limit int) ([]*entity.Listing, error) {
	var listingsM []*model.ListingModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ? AND approved = ?", true, true).
		Order("views_count DESC, id DESC").
		Limit(limit).
		Find(&listingsM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find most viewed listings")
	}

	return toListingDomains(listingsM), nil
}

// CreatedSince returns the creation times of listings created after since.
func (repo *listingRepository) CreatedSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	var createdAt []time.Time

	if err := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("created_at > ?", since.UTC()).
		Order("created_at ASC").
		Pluck("created_at", &createdAt).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list listing creation times")
	}

	return createdAt, nil
}

// DistinctValues returns the sorted distinct values of the column.
func (repo *listingRepository) DistinctValues(ctx context.Context, group repository.ListingGroup) ([]string, error) {
	column, err := groupColumn(group)
	if err != nil {
		return nil, err
	}

	var values []string
	if err := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Distinct(column).
		Order(column).
		Pluck(column, &values).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to list distinct %s values", column)
	}

	return values, nil
}

type cityCategoryRow struct {
	City     string
	Category string
	Listings int64
	Featured int64
}

// CityCategoryCounts returns the visible listing counts per city/category pair.
func (repo *listingRepository) CityCategoryCounts(ctx context.Context) ([]entity.CityCategory, error) {
	var rows []cityCategoryRow

	if err := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Select(`city, category, COUNT(*) AS listings,
			COALESCE(SUM(CASE WHEN featured THEN 1 ELSE 0 END), 0) AS featured`).
		Where("is_active = ? AND approved = ?", true, true).
		Group("city, category").
		Order("city, category").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count visible listings by city and category")
	}

	pairs := make([]entity.CityCategory, 0, len(rows))
	for _, row := range rows {
		pairs = append(pairs, entity.CityCategory{
			City:     row.City,
			Category: row.Category,
			Listings: row.Listings,
			Featured: row.Featured,
		})
	}

	return pairs, nil
}

func (repo *listingRepository) first(query *gorm.DB, message string) (*entity.Listing, error) {
	var listingM model.ListingModel

	if err := query.First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, message)
	}

	return toListingDomain(&listingM), nil
}

// applyListingFilter mirrors entity.ListingFilter.Matches in SQL.
func applyListingFilter(query *gorm.DB, filter entity.ListingFilter) *gorm.DB {
	switch filter.Scope {
	case entity.ScopePublicVisible:
		query = query.Where("is_active = ? AND approved = ?", true, true)
	case entity.ScopeAdminStatus:
		switch filter.Status {
		case entity.StatusActive:
			query = query.Where("is_active = ?", true)
		case entity.StatusInactive:
			query = query.Where("is_active = ?", false)
		case entity.StatusFeatured:
			query = query.Where("featured = ?", true)
		case entity.StatusPendingApproval:
			query = query.Where("approved = ?", false)
		}
	case entity.ScopeAdminAll:
	}

	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.ExcludeID != uuid.Nil {
		query = query.Where("id <> ?", filter.ExcludeID)
	}
	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(filter.Search)) + "%"
		query = query.Where(searchCondition, pattern, pattern, pattern, pattern)
	}

	return query
}

func groupColumn(group repository.ListingGroup) (string, error) {
	switch group {
	case repository.GroupByCity:
		return "city", nil
	case repository.GroupByCategory:
		return "category", nil
	default:
		return "", errors.Errorf("unsupported listing group %q", group)
	}
}

func translateListingWriteError(err error, message string) error {
	index, ok := uniqueViolation(err)
	if !ok {
		return domainerrors.NewDatabaseExecuteError(err, message)
	}

	switch index {
	case model.IndexListingSlug:
		return repository.ErrSlugTaken
	case model.IndexListingActiveUser:
		return repository.ErrActiveListingExists
	default:
		return domainerrors.NewDatabaseExecuteError(err, message)
	}
}

func toListingDomain(m *model.ListingModel) *entity.Listing {
	packages := make([]entity.ServicePackage, 0, len(m.Packages))
	for _, pkg := range m.Packages {
		packages = append(packages, entity.ServicePackage{
			Name:        pkg.Name,
			Description: pkg.Description,
			Price:       pkg.Price,
		})
	}

	images := m.Images
	if images == nil {
		images = []string{}
	}

	return &entity.Listing{
		ID:           m.ID,
		UserID:       m.UserID,
		BusinessName: m.BusinessName,
		Description:  m.Description,
		City:         m.City,
		Category:     m.Category,
		Slug:         m.Slug,
		Website:      m.Website,
		Instagram:    m.Instagram,
		Facebook:     m.Facebook,
		TikTok:       m.TikTok,
		Email:        m.Email,
		Phone:        m.Phone,
		Images:       images,
		Packages:     packages,
		ViewsCount:   m.ViewsCount,
		Featured:     m.Featured,
		Priority:     m.Priority,
		Approved:     m.Approved,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toListingDomains(models []*model.ListingModel) []*entity.Listing {
	listings := make([]*entity.Listing, 0, len(models))
	for _, m := range models {
		listings = append(listings, toListingDomain(m))
	}

	return listings
}

func fromListingDomain(l *entity.Listing) *model.ListingModel {
	packages := make([]model.ServicePackageModel, 0, len(l.Packages))
	for _, pkg := range l.Packages {
		packages = append(packages, model.ServicePackageModel{
			Name:        pkg.Name,
			Description: pkg.Description,
			Price:       pkg.Price,
		})
	}

	images := l.Images
	if images == nil {
		images = []string{}
	}

	return &model.ListingModel{
		ID:           l.ID,
		UserID:       l.UserID,
		BusinessName: l.BusinessName,
		Description:  l.Description,
		City:         l.City,
		Category:     l.Category,
		Slug:         l.Slug,
		Website:      l.Website,
		Instagram:    l.Instagram,
		Facebook:     l.Facebook,
		TikTok:       l.TikTok,
		Email:        l.Email,
		Phone:        l.Phone,
		Images:       images,
		Packages:     packages,
		ViewsCount:   l.ViewsCount,
		Featured:     l.Featured,
		Priority:     l.Priority,
		Approved:     l.Approved,
		IsActive:     l.IsActive,
		CreatedAt:    utcOrZero(l.CreatedAt),
		UpdatedAt:    utcOrZero(l.UpdatedAt),
	}
}

func utcOrZero(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}

	return t.UTC()
}

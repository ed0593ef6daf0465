package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"recycleshop/apperrors"
	"recycleshop/models"
)

//go:generate mockgen -destination=./mocks/mock_repository.go -package=mocks recycleshop/service Repository

type Repository interface {
	GetUserByUserID(ctx context.Context, userID string) (models.User, error)
	CreateUser(ctx context.Context, userID, name string) (models.User, error)
	ListUsersByPoints(ctx context.Context) ([]models.User, error)
	ListItems(ctx context.Context) ([]models.Item, error)
	GetItemByName(ctx context.Context, name string) (models.Item, error)
	SeedItems(ctx context.Context, items []models.Item) error
	ApplyPoints(ctx context.Context, userRowID, delta int, kind, itemName string) error
	GetUserTransactions(ctx context.Context, userRowID int) ([]models.Transaction, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return Service{repo: repo}
}

var userIDPattern = regexp.MustCompile(`^[0-9]{9}$`)

// DefaultCatalog is the fixed shop inventory seeded on first run.
func DefaultCatalog() []models.Item {
	return []models.Item{
		{Name: "Water", Price: 10, Icon: "💧"},
		{Name: "Drink", Price: 15, Icon: "🥤"},
		{Name: "Can", Price: 20, Icon: "🥫"},
		{Name: "Snacks", Price: 25, Icon: "🍿"},
	}
}

type LeaderboardEntry struct {
	Name   string
	Points int
}

type DashboardData struct {
	User         models.User
	Items        []models.Item
	Transactions []models.Transaction
	Rank         int
	TopUsers     []LeaderboardEntry
}

// SignUp creates a new account. It is create-or-fail, never an upsert.
func (s Service) SignUp(
	ctx context.Context,
	userID, name string,
) (models.User, error) {
	if !userIDPattern.MatchString(userID) {
		return models.User{}, fmt.Errorf(
			"%w: user id must be exactly 9 digits", apperrors.ErrValidation)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.User{}, fmt.Errorf(
			"%w: name must not be empty", apperrors.ErrValidation)
	}
	return s.repo.CreateUser(ctx, userID, name)
}

// Login resolves an existing account. Unknown identifiers are an error;
// logging in never creates an account.
func (s Service) Login(
	ctx context.Context,
	userID string,
) (models.User, error) {
	if !userIDPattern.MatchString(userID) {
		return models.User{}, fmt.Errorf(
			"%w: user id must be exactly 9 digits", apperrors.ErrValidation)
	}
	return s.repo.GetUserByUserID(ctx, userID)
}

// Recycle credits a deposit and appends the matching ledger entry.
func (s Service) Recycle(
	ctx context.Context,
	userID string,
	points int,
) error {
	if points <= 0 {
		return fmt.Errorf("%w: points must be positive", apperrors.ErrValidation)
	}
	user, err := s.repo.GetUserByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return s.repo.ApplyPoints(ctx, user.ID, points, models.TxKindRecycle, "")
}

// Purchase spends points on a catalog item. The affordability check happens
// inside the repository's row lock, together with the deduction.
func (s Service) Purchase(
	ctx context.Context,
	userID, itemName string,
) error {
	user, err := s.repo.GetUserByUserID(ctx, userID)
	if err != nil {
		return err
	}
	item, err := s.repo.GetItemByName(ctx, itemName)
	if err != nil {
		return err
	}
	return s.repo.ApplyPoints(
		ctx, user.ID, -item.Price, models.TxKindPurchase, item.Name)
}

// Dashboard assembles everything the dashboard view renders: balance, catalog,
// history, rank and the top three. Rank is recomputed on demand; its contract
// is 1 + the count of users with strictly more points, so tied users share a
// rank.
func (s Service) Dashboard(
	ctx context.Context,
	userID string,
) (DashboardData, error) {
	user, err := s.repo.GetUserByUserID(ctx, userID)
	if err != nil {
		return DashboardData{}, err
	}
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return DashboardData{}, err
	}
	txs, err := s.repo.GetUserTransactions(ctx, user.ID)
	if err != nil {
		return DashboardData{}, err
	}
	all, err := s.repo.ListUsersByPoints(ctx)
	if err != nil {
		return DashboardData{}, err
	}

	rank := 1
	for _, u := range all {
		if u.Points > user.Points {
			rank++
		}
	}

	var top []LeaderboardEntry
	for i := 0; i < len(all) && i < 3; i++ {
		top = append(top, LeaderboardEntry{
			Name:   all[i].Name,
			Points: all[i].Points,
		})
	}

	return DashboardData{
		User:         user,
		Items:        items,
		Transactions: txs,
		Rank:         rank,
		TopUsers:     top,
	}, nil
}

// EnsureCatalog seeds the default items when the catalog is empty. Safe to
// call on every start.
func (s Service) EnsureCatalog(ctx context.Context) error {
	return s.repo.SeedItems(ctx, DefaultCatalog())
}

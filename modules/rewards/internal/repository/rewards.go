package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"nachna/modules/rewards/internal/model"
	"nachna/shared/common/errs"
	"nachna/shared/common/storage/sqldb/transactor"

	"go.opentelemetry.io/otel/trace"
)

type RewardRepository interface {
	FindBalanceByUserID(ctx context.Context, userID string) (*model.RewardBalance, error)
	FindBalanceByUserIDForUpdate(ctx context.Context, userID string) (*model.RewardBalance, error)
	CreateBalance(ctx context.Context, balance *model.RewardBalance) error
	UpdateBalance(ctx context.Context, balance *model.RewardBalance) error
	CreateTransaction(ctx context.Context, tx *model.RewardTransaction) error
	FindTransactionByID(ctx context.Context, id int64) (*model.RewardTransaction, error)
}

type rewardRepository struct {
	dbCtx transactor.DBTXContext
}

func NewRewardRepository(dbCtx transactor.DBTXContext) RewardRepository {
	return &rewardRepository{
		dbCtx: dbCtx,
	}
}

func (r *rewardRepository) FindBalanceByUserID(ctx context.Context, userID string) (*model.RewardBalance, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:RewardRepository:FindBalanceByUserID")
	defer span.End()

	query := `
	SELECT *
	FROM rewards.balances
	WHERE user_id = $1
`
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	var balance model.RewardBalance
	err := r.dbCtx(ctx).QueryRowxContext(ctx, query, userID).StructScan(&balance)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while finding a reward balance by user id: %w", err))
	}

	return &balance, nil
}

func (r *rewardRepository) FindBalanceByUserIDForUpdate(ctx context.Context, userID string) (*model.RewardBalance, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:RewardRepository:FindBalanceByUserIDForUpdate")
	defer span.End()

	// FOR NO KEY UPDATE ล็อคแถวไว้จนจบ transaction กันตัดยอดซ้อนกัน
	query := `
	SELECT *
	FROM rewards.balances
	WHERE user_id = $1
	FOR NO KEY UPDATE
`
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	var balance model.RewardBalance
	err := r.dbCtx(ctx).QueryRowxContext(ctx, query, userID).StructScan(&balance)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while finding a reward balance by user id: %w", err))
	}

	return &balance, nil
}

func (r *rewardRepository) CreateBalance(ctx context.Context, balance *model.RewardBalance) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:RewardRepository:CreateBalance")
	defer span.End()

	query := `
	INSERT INTO rewards.balances (id, user_id, available_balance, lifetime_earned, lifetime_redeemed)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING *
	`

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err := r.dbCtx(ctx).
		QueryRowxContext(ctx, query,
			balance.ID, balance.UserID,
			balance.AvailableBalance, balance.LifetimeEarned, balance.LifetimeRedeemed).
		StructScan(balance) // นำค่า created_at, updated_at ใส่ใน struct
	if err != nil {
		return errs.HandleDBError(fmt.Errorf("an error occurred while inserting reward balance: %w", err))
	}
	return nil
}

func (r *rewardRepository) UpdateBalance(ctx context.Context, balance *model.RewardBalance) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:RewardRepository:UpdateBalance")
	defer span.End()

	query := `
	UPDATE rewards.balances
	SET available_balance = $2,
	    lifetime_earned = $3,
	    lifetime_redeemed = $4,
	    updated_at = now()
	WHERE id = $1
	RETURNING *
`
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	err := r.dbCtx(ctx).
		QueryRowxContext(ctx, query,
			balance.ID,
			balance.AvailableBalance, balance.LifetimeEarned, balance.LifetimeRedeemed).
		StructScan(balance)
	if err != nil {
		return errs.HandleDBError(fmt.Errorf("an error occurred while updating reward balance: %w", err))
	}
	return nil
}

func (r *rewardRepository) CreateTransaction(ctx context.Context, tx *model.RewardTransaction) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:RewardRepository:CreateTransaction")
	defer span.End()

	query := `
	INSERT INTO rewards.transactions (id, user_id, transaction_type, points, discount_amount, reference_id)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING *
	`

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err := r.dbCtx(ctx).
		QueryRowxContext(ctx, query,
			tx.ID, tx.UserID, tx.TransactionType,
			tx.Points, tx.DiscountAmount, tx.ReferenceID).
		StructScan(tx)
	if err != nil {
		return errs.HandleDBError(fmt.Errorf("an error occurred while inserting reward transaction: %w", err))
	}
	return nil
}

func (r *rewardRepository) FindTransactionByID(ctx context.Context, id int64) (*model.RewardTransaction, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:RewardRepository:FindTransactionByID")
	defer span.End()

	query := `
	SELECT *
	FROM rewards.transactions
	WHERE id = $1
`
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	var tx model.RewardTransaction
	err := r.dbCtx(ctx).QueryRowxContext(ctx, query, id).StructScan(&tx)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while finding a reward transaction by id: %w", err))
	}

	return &tx, nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"nachna/modules/order/internal/model"
	"nachna/shared/common/errs"
	"nachna/shared/common/storage/sqldb/transactor"

	"go.opentelemetry.io/otel/trace"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id int64) (*model.Order, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*model.Order, error)
	UpdateStatus(ctx context.Context, order *model.Order) error
}

type orderRepository struct {
	dbCtx transactor.DBTXContext
}

func NewOrderRepository(dbCtx transactor.DBTXContext) OrderRepository {
	return &orderRepository{
		dbCtx: dbCtx,
	}
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:OrderRepository:Create")
	defer span.End()

	query := `
	INSERT INTO orders.orders (
		id, user_id, workshop_id,
		original_amount, discount_amount, final_amount, points_redeemed,
		reward_transaction_id, status, payment_ref, qr_code_url)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING *
	`

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err := r.dbCtx(ctx).
		QueryRowxContext(ctx, query,
			order.ID, order.UserID, order.WorkshopID,
			order.OriginalAmount, order.DiscountAmount, order.FinalAmount, order.PointsRedeemed,
			order.RewardTransactionID, order.Status, order.PaymentRef, order.QRCodeURL).
		StructScan(order)
	if err != nil {
		return errs.HandleDBError(fmt.Errorf("an error occurred while inserting order: %w", err))
	}
	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (*model.Order, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:OrderRepository:FindByID")
	defer span.End()

	query := `
	SELECT *
	FROM orders.orders
	WHERE id = $1
`
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	var order model.Order
	err := r.dbCtx(ctx).QueryRowxContext(ctx, query, id).StructScan(&order)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while finding an order by id: %w", err))
	}

	return &order, nil
}

func (r *orderRepository) FindByIDForUpdate(ctx context.Context, id int64) (*model.Order, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:OrderRepository:FindByIDForUpdate")
	defer span.End()

	query := `
	SELECT *
	FROM orders.orders
	WHERE id = $1
	FOR NO KEY UPDATE
`
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	var order model.Order
	err := r.dbCtx(ctx).QueryRowxContext(ctx, query, id).StructScan(&order)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while finding an order by id: %w", err))
	}

	return &order, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, order *model.Order) error {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("repository")
	ctx, span := tracer.Start(ctx, "Repository:OrderRepository:UpdateStatus")
	defer span.End()

	query := `
	UPDATE orders.orders
	SET status = $2,
	    updated_at = now()
	WHERE id = $1
	RETURNING *
`
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	err := r.dbCtx(ctx).QueryRowxContext(ctx, query, order.ID, order.Status).StructScan(order)
	if err != nil {
		return errs.HandleDBError(fmt.Errorf("an error occurred while updating order status: %w", err))
	}
	return nil
}

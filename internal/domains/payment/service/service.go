package service

import (
	"context"
	"fmt"
	"tripdesk/config"
	"tripdesk/infras/otel"
	bookingModel "tripdesk/internal/domains/booking/model"
	bookingRepo "tripdesk/internal/domains/booking/repository"
	"tripdesk/internal/domains/payment/ledger"
	"tripdesk/internal/domains/payment/model"
	"tripdesk/internal/domains/payment/model/dto"
	"tripdesk/internal/domains/payment/repository"
	"tripdesk/permissions"
	"tripdesk/shared"
	"tripdesk/shared/cache"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/event"
	"tripdesk/shared/failure"
	gModel "tripdesk/shared/model"
	gRepo "tripdesk/shared/repository"
	"tripdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type Payment interface {
	Capture(ctx context.Context, req dto.CaptureRequest) (dto.CaptureResponse, error)
	Refund(ctx context.Context, req dto.RefundRequest) (dto.RefundResponse, error)
	ListTransactions(ctx context.Context, bookingID string) ([]dto.TransactionResponse, error)
}

type serviceImpl struct {
	repo        repository.PaymentTransaction
	bookingRepo bookingRepo.Booking
	transactor  gRepo.Transactor
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	policy      *permissions.Policy
	publisher   event.Publisher
}

func New(
	repo repository.PaymentTransaction,
	bookingRepo bookingRepo.Booking,
	transactor gRepo.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	policy *permissions.Policy,
	publisher event.Publisher,
) Payment {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		transactor:  transactor,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		policy:      policy,
		publisher:   publisher,
	}
}

// Capture records a completed incoming payment and re-derives the booking's paid total.
func (s *serviceImpl) Capture(ctx context.Context, req dto.CaptureRequest) (res dto.CaptureResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Capture")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpPaymentCapture); err != nil {
		return res, err //nolint:wrapcheck
	}

	amount := decimal.NewFromFloat(req.Amount)
	if err = checkAmount(amount); err != nil {
		return res, err
	}

	if req.PaymentMethod == constant.Empty {
		return res, failure.BadRequestFromString("payment_method is required")
	}

	txn := model.PaymentTransaction{
		ID:            uuid.NewString(),
		TransactionID: ledger.NewTransactionID(model.PrefixCapture),
		BookingID:     req.BookingID,
		Amount:        amount,
		PaymentMethod: req.PaymentMethod,
		Status:        model.StatusCompleted,
		ProcessedBy:   actor.ID,
		Metadata:      gModel.NewMetadata(timezone.Now(), actor.ID),
	}

	booking, err := s.append(ctx, txn, func(decimal.Decimal) error { return nil })
	if err != nil {
		return res, err
	}

	res = dto.CaptureResponse{
		TransactionID:   txn.TransactionID,
		AmountPaid:      booking.AmountPaid.InexactFloat64(),
		RemainingAmount: ledger.Remaining(booking.AmountPaid, booking.TotalAmount).InexactFloat64(),
		PaymentStatus:   booking.PaymentStatus,
	}

	s.publisher.Publish(ctx, event.New(event.TypePaymentCaptured, req.BookingID, actor.ID, map[string]any{
		"transaction_id": txn.TransactionID,
		"amount":         amount.String(),
		"amount_paid":    booking.AmountPaid.String(),
		"payment_status": booking.PaymentStatus,
	}))
	s.invalidateBookings(ctx)

	return res, nil
}

// Refund records a negative entry. The refund may not exceed what has been paid so far.
func (s *serviceImpl) Refund(ctx context.Context, req dto.RefundRequest) (res dto.RefundResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refund")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpPaymentRefund); err != nil {
		return res, err //nolint:wrapcheck
	}

	amount := decimal.NewFromFloat(req.Amount).Abs()
	if err = checkAmount(amount); err != nil {
		return res, err
	}

	txn := model.PaymentTransaction{
		ID:            uuid.NewString(),
		TransactionID: ledger.NewTransactionID(model.PrefixRefund),
		BookingID:     req.BookingID,
		Amount:        amount.Neg(),
		PaymentMethod: model.PaymentMethodRefund,
		Status:        model.StatusCompleted,
		Reason:        req.Reason,
		ProcessedBy:   actor.ID,
		Metadata:      gModel.NewMetadata(timezone.Now(), actor.ID),
	}

	booking, err := s.append(ctx, txn, func(paid decimal.Decimal) error {
		if amount.GreaterThan(paid) {
			return failure.BadRequestFromString(fmt.Sprintf("refund of %s exceeds the %s paid so far", amount.StringFixed(2), paid.StringFixed(2)))
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	res = dto.RefundResponse{
		RefundID:      txn.TransactionID,
		AmountPaid:    booking.AmountPaid.InexactFloat64(),
		PaymentStatus: booking.PaymentStatus,
	}

	s.publisher.Publish(ctx, event.New(event.TypePaymentRefunded, req.BookingID, actor.ID, map[string]any{
		"refund_id":      txn.TransactionID,
		"amount":         amount.String(),
		"amount_paid":    booking.AmountPaid.String(),
		"payment_status": booking.PaymentStatus,
	}))
	s.invalidateBookings(ctx)

	return res, nil
}

// append locks the booking, folds its ledger, lets check veto against the current paid total, then
// writes the entry and the re-derived aggregate in the same transaction.
func (s *serviceImpl) append(ctx context.Context, txn model.PaymentTransaction, check func(paid decimal.Decimal) error) (res bookingModel.Booking, err error) {
	err = s.transactor.WithTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		bookingFilter := shared.FilterByID(txn.BookingID, bookingModel.FieldID, bookingModel.TableName)

		booking, err := s.bookingRepo.GetForUpdateTx(ctx, tx, bookingFilter)
		if err != nil {
			log.Error().Err(err).Msg("failed to lock booking")

			return fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.ID == constant.Empty {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		history, err := s.repo.GetAllTx(ctx, tx, gDto.QueryParams{}, transactionsFilter(txn.BookingID))
		if err != nil {
			log.Error().Err(err).Msg("failed to get payment transactions")

			return fmt.Errorf("failed to get payment transactions: %w", err)
		}

		paid := ledger.Fold(history)

		if err := check(paid); err != nil {
			return err
		}

		if err := s.repo.InsertTx(ctx, tx, txn); err != nil {
			log.Error().Err(err).Msg("failed to record payment transaction")

			return fmt.Errorf("failed to record payment transaction: %w", err)
		}

		booking.AmountPaid = ledger.Fold(append(history, txn))
		booking.PaymentStatus = ledger.DeriveStatus(booking.AmountPaid, booking.TotalAmount)

		patch := map[string]any{
			bookingModel.FieldAmountPaid:    booking.AmountPaid,
			bookingModel.FieldPaymentStatus: booking.PaymentStatus,
			constant.FieldModifiedAt:        timezone.Now(),
			constant.FieldModifiedBy:        txn.ProcessedBy,
		}

		if err := s.bookingRepo.UpdateTx(ctx, tx, patch, bookingFilter); err != nil {
			log.Error().Err(err).Msg("failed to update booking payment")

			return fmt.Errorf("failed to update booking payment: %w", err)
		}

		res = booking

		return nil
	})

	return res, err //nolint:wrapcheck
}

// ListTransactions returns the booking's ledger in the order it was written.
func (s *serviceImpl) ListTransactions(ctx context.Context, bookingID string) (res []dto.TransactionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListTransactions")
	defer scope.End()
	defer scope.TraceIfError(&err)

	actor := gDto.ActorFromContext(ctx)

	if err = s.policy.Authorize(actor.Role, permissions.OpPaymentListTransactions); err != nil {
		return res, err //nolint:wrapcheck
	}

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty || (actor.IsCustomer() && booking.CustomerID != actor.ID) {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	params := gDto.QueryParams{SortBy: model.FieldSequence, SortDir: gDto.SortDirAsc}

	transactions, err := s.repo.GetAll(ctx, params, transactionsFilter(bookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment transactions")

		return res, fmt.Errorf("failed to get payment transactions: %w", err)
	}

	res = make([]dto.TransactionResponse, len(transactions))
	for i, txn := range transactions {
		res[i].FromModel(txn)
	}

	return res, nil
}

func (s *serviceImpl) invalidateBookings(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, bookingModel.CachePrefix)
	}()
}

// checkAmount keeps entries at the precision the ledger stores, so the folded total and the
// persisted amount_paid never disagree.
func checkAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return failure.BadRequestFromString("amount must be greater than 0")
	}

	if !amount.Equal(amount.Round(model.AmountScale)) {
		return failure.BadRequestFromString(fmt.Sprintf("amount must have at most %d decimal places", model.AmountScale))
	}

	return nil
}

func transactionsFilter(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{shared.FilterByField(model.FieldBookingID, bookingID, model.TableName)},
	}
}

package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"leadmarket/internal/domain/entities"
	"leadmarket/internal/domain/policy"
	"leadmarket/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound            = errors.New("payment not found")
	ErrInvalidProviderPayload     = errors.New("invalid payment provider payload")
	ErrUnknownCreditPackage       = errors.New("unknown credit package")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
	ErrPaymentDenied              = errors.New("payment denied by provider")
)

// IPaymentUseCase fronts the two money-in flows.
//
// PayEstimate charges the customer's estimate fee and, on approval, performs
// the sealed paid transition on the estimate. PurchaseCreditPackage charges a
// professional for a credit bundle and, on approval, credits the ledger. In
// both flows the amount charged comes from server-side policy/state, never
// from the client payload.
type IPaymentUseCase interface {
	PayEstimate(ctx context.Context, estimateID string, providerPayload json.RawMessage) (entities.PaymentRecord, error)
	PurchaseCreditPackage(ctx context.Context, professionalID, packageID string, providerPayload json.RawMessage) (entities.PaymentRecord, int64, error)
	LatestByReferenceID(ctx context.Context, referenceID string) (entities.PaymentRecord, error)
}

type PaymentUseCase struct {
	repo         interfaces.IPaymentRecordRepository
	estimateRepo interfaces.IEstimateRepository
	creditRepo   interfaces.ICreditRepository
	gateway      interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRecordRepository,
	estimateRepo interfaces.IEstimateRepository,
	creditRepo interfaces.ICreditRepository,
	gateway interfaces.IPaymentGateway,
) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, estimateRepo: estimateRepo, creditRepo: creditRepo, gateway: gateway}
}

func (u *PaymentUseCase) PayEstimate(ctx context.Context, estimateID string, providerPayload json.RawMessage) (entities.PaymentRecord, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.PaymentRecord{}, ErrInvalidEstimateID
	}
	providerPayload, err := normalizePayload(providerPayload)
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	est, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if est.ID == "" {
		return entities.PaymentRecord{}, ErrEstimateNotFound
	}
	if est.Paid {
		return entities.PaymentRecord{}, entities.ErrEstimateAlreadyPaid
	}

	payload := enrichPayload(providerPayload, estimateID, fmt.Sprintf("Estimate %s", estimateID), policy.EstimateFeeAmount)

	providerID, status, providerResp, err := u.charge(ctx, estimateID, payload)
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	if _, err := u.estimateRepo.MarkPaid(ctx, estimateID); err != nil {
		if errors.Is(err, entities.ErrEstimateAlreadyPaid) {
			// A concurrent payment won the transition after our charge went
			// through. The estimate is paid either way; keep the record.
			log.Printf("[payment][usecase] ALERT double estimate charge estimate_id=%s provider_payment_id=%s", estimateID, providerID)
		} else {
			log.Printf("[payment][usecase] ALERT paid transition failed after charge estimate_id=%s provider_payment_id=%s err=%v", estimateID, providerID, err)
			return entities.PaymentRecord{}, err
		}
	}

	return u.record(ctx, entities.PaymentRecord{
		ID:          providerID,
		Kind:        entities.PaymentKindEstimate,
		ReferenceID: estimateID,
		Amount:      policy.EstimateFeeAmount,
		Date:        time.Now().UTC(),
		Status:      paymentStatusFromProvider(status),
	}, providerResp)
}

func (u *PaymentUseCase) PurchaseCreditPackage(ctx context.Context, professionalID, packageID string, providerPayload json.RawMessage) (entities.PaymentRecord, int64, error) {
	professionalID = strings.TrimSpace(professionalID)
	if professionalID == "" {
		return entities.PaymentRecord{}, 0, ErrInvalidProfessionalID
	}
	pkg, ok := policy.CreditPackages[strings.TrimSpace(packageID)]
	if !ok {
		return entities.PaymentRecord{}, 0, ErrUnknownCreditPackage
	}
	providerPayload, err := normalizePayload(providerPayload)
	if err != nil {
		return entities.PaymentRecord{}, 0, err
	}

	prof, err := u.creditRepo.GetByID(ctx, professionalID)
	if err != nil {
		return entities.PaymentRecord{}, 0, err
	}
	if prof.ID == "" {
		return entities.PaymentRecord{}, 0, ErrProfessionalNotFound
	}

	payload := enrichPayload(providerPayload, professionalID, fmt.Sprintf("Credit package %s (%d credits)", pkg.ID, pkg.Credits), pkg.PriceAmount)

	providerID, status, providerResp, err := u.charge(ctx, professionalID, payload)
	if err != nil {
		return entities.PaymentRecord{}, 0, err
	}

	credited, err := u.creditRepo.Credit(ctx, professionalID, pkg.Credits)
	if err != nil || credited.ID == "" {
		// The provider already took the money; a failed grant here needs
		// manual reconciliation against the payment record.
		log.Printf("[payment][usecase] ALERT credit grant failed after charge professional_id=%s package_id=%s provider_payment_id=%s err=%v", professionalID, pkg.ID, providerID, err)
		if err == nil {
			err = ErrProfessionalNotFound
		}
		return entities.PaymentRecord{}, 0, err
	}

	record, err := u.record(ctx, entities.PaymentRecord{
		ID:          providerID,
		Kind:        entities.PaymentKindCreditPackage,
		ReferenceID: professionalID,
		PackageID:   pkg.ID,
		Amount:      pkg.PriceAmount,
		Date:        time.Now().UTC(),
		Status:      paymentStatusFromProvider(status),
	}, providerResp)
	if err != nil {
		return entities.PaymentRecord{}, 0, err
	}
	log.Printf("[payment][usecase] credit package sold professional_id=%s package_id=%s credits=%d new_balance=%d", professionalID, pkg.ID, pkg.Credits, credited.CreditBalance)
	return record, credited.CreditBalance, nil
}

func (u *PaymentUseCase) LatestByReferenceID(ctx context.Context, referenceID string) (entities.PaymentRecord, error) {
	referenceID = strings.TrimSpace(referenceID)
	if referenceID == "" {
		return entities.PaymentRecord{}, ErrPaymentNotFound
	}

	records, err := u.repo.ListByReferenceID(ctx, referenceID)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(records) == 0 {
		return entities.PaymentRecord{}, ErrPaymentNotFound
	}

	latest := records[0]
	for _, r := range records[1:] {
		if r.Date.After(latest.Date) {
			latest = r
		}
	}
	return latest, nil
}

func (u *PaymentUseCase) charge(ctx context.Context, reference string, payload json.RawMessage) (string, string, json.RawMessage, error) {
	if u.gateway == nil {
		return "", "", nil, errors.New("payment gateway not configured")
	}

	log.Printf("[payment][usecase] calling payment gateway reference=%s payload_len=%d", reference, len(payload))
	providerID, status, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed reference=%s err=%v", reference, err)
		if isGatewayUnauthorized(err) {
			return "", "", nil, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return "", "", nil, ErrPaymentGatewayBadRequest
		}
		return "", "", nil, err
	}
	if paymentStatusFromProvider(status) != entities.PaymentStatusApproved {
		log.Printf("[payment][usecase] payment denied reference=%s provider_payment_id=%s provider_status=%s", reference, providerID, status)
		return "", "", nil, ErrPaymentDenied
	}
	log.Printf("[payment][usecase] payment gateway success reference=%s provider_payment_id=%s provider_status=%s", reference, providerID, status)
	return providerID, status, providerResp, nil
}

func (u *PaymentUseCase) record(ctx context.Context, p entities.PaymentRecord, providerResp json.RawMessage) (entities.PaymentRecord, error) {
	p.ProviderPayloadRaw = providerResp

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed payment_id=%s err=%v", p.ID, err)
	}
	p.ProviderPayload = parsed

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment record create failed payment_id=%s err=%v", p.ID, err)
		return entities.PaymentRecord{}, err
	}
	return created, nil
}

// normalizePayload tolerates an absent body (token-less local flows and the
// gateway's mock mode) but rejects bodies that are not JSON.
func normalizePayload(payload json.RawMessage) (json.RawMessage, error) {
	if len(payload) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(payload) {
		return nil, ErrInvalidProviderPayload
	}
	return payload, nil
}

// enrichPayload links the provider request to our reference and forces the
// server-side amount. The source of truth for the amount is policy/state in
// this service, never the client payload.
func enrichPayload(payload json.RawMessage, reference, description string, amount int64) json.RawMessage {
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		return payload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = reference
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = description
	}
	reqMap["transaction_amount"] = amount
	if b, err := json.Marshal(reqMap); err == nil {
		return b
	}
	return payload
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "accredited":
		return entities.PaymentStatusApproved
	case "pending", "in_process":
		return entities.PaymentStatusPending
	default:
		return entities.PaymentStatusDenied
	}
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

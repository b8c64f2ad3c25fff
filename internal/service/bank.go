package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"rental-management-backend/internal/config"
	"rental-management-backend/internal/database/models"
	apperrors "rental-management-backend/internal/errors"
	"rental-management-backend/internal/logger"
	"rental-management-backend/internal/repository"

	"github.com/google/uuid"
)

const maxAddInfoLength = 25

// Bank is one entry of the VietQR bank directory
type Bank struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	Code              string `json:"code"`
	Bin               string `json:"bin"`
	ShortName         string `json:"shortName"`
	Logo              string `json:"logo"`
	TransferSupported int    `json:"transferSupported"`
	LookupSupported   int    `json:"lookupSupported"`
}

// BanksResponse mirrors the VietQR banks API payload
type BanksResponse struct {
	Code string `json:"code"`
	Desc string `json:"desc"`
	Data []Bank `json:"data"`
}

// QRCodeRequest holds the raw query parameters of the QR endpoint
type QRCodeRequest struct {
	InvoiceID string
	Amount    string
	AddInfo   string
}

// QRCodeResponse is the payment QR returned to clients
type QRCodeResponse struct {
	QRURL         string `json:"qrUrl"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	BankCode      string `json:"bankCode"`
}

// BankService proxies the VietQR bank directory and builds payment QR links
type BankService struct {
	cfg        *config.Config
	httpClient *http.Client
	invoices   repository.InvoiceRepositoryInterface
	users      repository.UserRepositoryInterface
	now        func() time.Time

	mu       sync.RWMutex
	cached   *BanksResponse
	cachedAt time.Time
}

// NewBankService creates a new bank service
func NewBankService(cfg *config.Config, invoices repository.InvoiceRepositoryInterface, users repository.UserRepositoryInterface) *BankService {
	return &BankService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.VietQRTimeout},
		invoices:   invoices,
		users:      users,
		now:        time.Now,
	}
}

var _ BankServiceInterface = (*BankService)(nil)

// SetClock overrides the time source
func (s *BankService) SetClock(now func() time.Time) { s.now = now }

// SetHTTPClient overrides the client used for the upstream API
func (s *BankService) SetHTTPClient(c *http.Client) { s.httpClient = c }

// Banks returns the bank directory, served from memory while the cache is fresh
func (s *BankService) Banks(ctx context.Context) (*BanksResponse, error) {
	s.mu.RLock()
	if s.cached != nil && s.now().Sub(s.cachedAt) < s.cfg.VietQRCacheTTL {
		banks := s.cached
		s.mu.RUnlock()
		return banks, nil
	}
	s.mu.RUnlock()

	banks, err := s.fetchBanks(ctx)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Failed to fetch VietQR bank list")
		return nil, apperrors.ErrBanksUnavailable
	}

	s.mu.Lock()
	s.cached = banks
	s.cachedAt = s.now()
	s.mu.Unlock()
	return banks, nil
}

func (s *BankService) fetchBanks(ctx context.Context) (*BanksResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.VietQRBanksURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("VietQR API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out BanksResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}

// bankName resolves a code or BIN against the cached directory, falling back to the code itself
func (s *BankService) bankName(ctx context.Context, code string) string {
	banks, err := s.Banks(ctx)
	if err != nil {
		return code
	}
	for _, b := range banks.Data {
		if strings.EqualFold(b.Code, code) || b.Bin == code {
			if b.ShortName != "" {
				return b.ShortName
			}
			return b.Name
		}
	}
	return code
}

// QRCode builds the VietQR image link paying the landlord behind an invoice, or the actor
func (s *BankService) QRCode(ctx context.Context, actor *models.User, req QRCodeRequest) (*QRCodeResponse, error) {
	var (
		landlord *models.User
		err      error
	)
	if strings.TrimSpace(req.InvoiceID) != "" {
		landlord, err = s.invoiceLandlord(ctx, actor, req.InvoiceID)
		if err != nil {
			return nil, err
		}
	} else {
		if err := requireLandlord(actor); err != nil {
			return nil, err
		}
		landlord = actor
	}
	if !landlord.HasBankInfo() {
		return nil, apperrors.ErrBankInfoMissing
	}

	params := url.Values{}
	if raw := strings.TrimSpace(req.Amount); raw != "" {
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(amount) || amount < 0 || amount >= math.MaxInt64 {
			return nil, apperrors.ErrInvalidAmount
		}
		params.Set("amount", strconv.FormatInt(int64(amount), 10))
	}
	if info := SanitizeAddInfo(req.AddInfo); info != "" {
		params.Set("addInfo", info)
	}

	bankCode := strings.ToUpper(landlord.BankCode)
	qrURL := fmt.Sprintf("%s/%s-%s-compact.jpg", strings.TrimRight(s.cfg.VietQRImageBaseURL, "/"), bankCode, landlord.BankAccountNumber)
	if len(params) > 0 {
		qrURL += "?" + params.Encode()
	}

	return &QRCodeResponse{
		QRURL:         qrURL,
		BankName:      s.bankName(ctx, bankCode),
		AccountNumber: landlord.BankAccountNumber,
		BankCode:      bankCode,
	}, nil
}

// invoiceLandlord loads the owner of the property an invoice belongs to, checking actor's access
func (s *BankService) invoiceLandlord(ctx context.Context, actor *models.User, rawID string) (*models.User, error) {
	id, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return nil, invalidUUID("invoice_id")
	}
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice.Tenancy == nil || invoice.Tenancy.Room == nil || invoice.Tenancy.Room.Building == nil {
		return nil, apperrors.ErrInvoiceNotFound
	}
	ownerID := invoice.Tenancy.Room.Building.OwnerID

	switch {
	case actor.IsSuperuser:
	case actor.IsTenant() && invoice.Tenancy.TenantID == actor.ID:
	case actor.IsLandlord() && ownerID == actor.ID:
	default:
		return nil, apperrors.ErrInvoiceAccessDenied
	}

	if ownerID == actor.ID {
		return actor, nil
	}
	return s.users.GetByID(ctx, ownerID)
}

// SanitizeAddInfo keeps ASCII letters, digits and spaces, capped at the VietQR transfer note length
func SanitizeAddInfo(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r > 127 {
			continue
		}
		if r == ' ' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if len(out) > maxAddInfoLength {
		out = out[:maxAddInfoLength]
	}
	return strings.TrimSpace(out)
}

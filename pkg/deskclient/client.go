package deskclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-DeskService/internal/domain"
	"github.com/m04kA/SMC-DeskService/pkg/timefmt"
)

// Client клиент HTTP API сервиса бронирования столов
// Все запросы уходят с заголовками, заданными опциями (токен, трассировка и т.п.)
type Client struct {
	baseURL    string
	httpClient *http.Client
	headers    http.Header
	location   *time.Location
	log        Logger
}

// Option настраивает клиента
type Option func(*Client)

// WithToken добавляет Authorization: Bearer <token> ко всем запросам
func WithToken(token string) Option {
	return WithHeader("Authorization", "Bearer "+token)
}

// WithHeader добавляет заголовок ко всем запросам
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

// WithHTTPClient подменяет http.Client (таймауты, транспорт)
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient создает новый экземпляр клиента
// loc - зона бронирования, в которой форматируются "HH:mm DD.MM.YYYY", должна совпадать с зоной сервера
func NewClient(baseURL string, timeout time.Duration, loc *time.Location, log Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		headers:  make(http.Header),
		location: loc,
		log:      log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListDesks получает столы с состоянием на сегодня
func (c *Client) ListDesks(ctx context.Context) ([]domain.Desk, error) {
	var resp desksResponse
	if err := c.do(ctx, http.MethodGet, "/desks", nil, &resp); err != nil {
		return nil, err
	}
	return toDomainDesks(resp.Desks, c.location), nil
}

// LoadDesks массово создает столы
func (c *Client) LoadDesks(ctx context.Context, names []string) ([]domain.Desk, error) {
	req := loadDesksRequest{Desks: make([]deskInput, 0, len(names))}
	for _, name := range names {
		req.Desks = append(req.Desks, deskInput{Name: name})
	}

	var resp desksResponse
	if err := c.do(ctx, http.MethodPost, "/desks/load", req, &resp); err != nil {
		return nil, err
	}
	return toDomainDesks(resp.Desks, c.location), nil
}

// RenameDesk переименовывает стол
func (c *Client) RenameDesk(ctx context.Context, deskID, name string) error {
	return c.do(ctx, http.MethodPut, "/desks/"+url.PathEscape(deskID), renameDeskRequest{Name: name}, nil)
}

// DeleteDesk удаляет стол
func (c *Client) DeleteDesk(ctx context.Context, deskID string) error {
	return c.do(ctx, http.MethodDelete, "/desks/"+url.PathEscape(deskID), nil, nil)
}

// GetDeskSlots получает сетку слотов стола на день (hourly) или месяц (daily)
func (c *Client) GetDeskSlots(ctx context.Context, deskID string, date time.Time, mode domain.SlotMode) ([]domain.Slot, error) {
	query := url.Values{}
	query.Set("date", date.In(c.location).Format(timefmt.DateLayout))
	query.Set("mode", string(mode))

	var resp slotsResponse
	path := "/desks/" + url.PathEscape(deskID) + "/slots?" + query.Encode()
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	slots := make([]domain.Slot, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, domain.Slot{
			From:        s.DateFrom.In(c.location),
			To:          s.DateTo.In(c.location),
			IsAvailable: s.IsAvailable,
		})
	}
	return slots, nil
}

// CreateReservation бронирует один непрерывный интервал
// Многодневный интервал сервис раскладывает на брони по дням
func (c *Client) CreateReservation(ctx context.Context, req domain.BookingRequest) ([]domain.Reservation, error) {
	body := createReservationRequest{
		DeskID:   req.DeskID,
		DateFrom: timefmt.Format(req.DateFrom, c.location),
		DateTo:   timefmt.Format(req.DateTo, c.location),
	}

	var resp reservationsResponse
	if err := c.do(ctx, http.MethodPost, "/reservations", body, &resp); err != nil {
		return nil, err
	}
	return toDomainReservations(resp.Reservations, c.location), nil
}

// BookSlots бронирует выбранные слоты сетки одним запросом, все или ни один
func (c *Client) BookSlots(ctx context.Context, deskID string, mode domain.SlotMode, slots []domain.TimeSlot) ([]domain.Reservation, error) {
	body := bookSlotsRequest{
		DeskID: deskID,
		Mode:   string(mode),
		Slots:  make([]slotRequest, 0, len(slots)),
	}
	for _, s := range slots {
		body.Slots = append(body.Slots, slotRequest{
			DateFrom: timefmt.Format(s.From, c.location),
			DateTo:   timefmt.Format(s.To, c.location),
		})
	}

	var resp reservationsResponse
	if err := c.do(ctx, http.MethodPost, "/reservations/batch", body, &resp); err != nil {
		return nil, err
	}
	return toDomainReservations(resp.Reservations, c.location), nil
}

// ListReservations получает бронирования текущего пользователя
func (c *Client) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	var resp reservationsResponse
	if err := c.do(ctx, http.MethodGet, "/reservations", nil, &resp); err != nil {
		return nil, err
	}
	return toDomainReservations(resp.Reservations, c.location), nil
}

// ListGroupedReservations получает бронирования, сгруппированные по столу и дню
func (c *Client) ListGroupedReservations(ctx context.Context) ([]domain.GroupedReservation, error) {
	var resp groupedResponse
	if err := c.do(ctx, http.MethodGet, "/reservations/grouped", nil, &resp); err != nil {
		return nil, err
	}

	groups := make([]domain.GroupedReservation, 0, len(resp.Groups))
	for _, g := range resp.Groups {
		date, err := timefmt.ParseDate(g.Date, c.location)
		if err != nil {
			return nil, fmt.Errorf("%w: group date: %v", ErrInvalidResponse, err)
		}
		groups = append(groups, domain.GroupedReservation{
			DeskID:         g.DeskID,
			DeskName:       g.DeskName,
			ReservationIDs: g.ReservationIDs,
			ReservedSlots:  toDomainSlots(g.ReservedSlots, c.location),
			Date:           date,
		})
	}
	return groups, nil
}

// CancelReservation отменяет одно бронирование
func (c *Client) CancelReservation(ctx context.Context, reservationID string) error {
	return c.do(ctx, http.MethodDelete, "/reservations/"+url.PathEscape(reservationID), nil, nil)
}

// CancelReservations отменяет группу бронирований одним запросом
func (c *Client) CancelReservations(ctx context.Context, reservationIDs []string) error {
	return c.do(ctx, http.MethodPost, "/reservations/cancel", cancelManyRequest{ReservationIDs: reservationIDs}, nil)
}

// CancelAllReservations отменяет все бронирования пользователя
func (c *Client) CancelAllReservations(ctx context.Context) (int64, error) {
	var resp cancelAllResponse
	if err := c.do(ctx, http.MethodDelete, "/reservations", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Cancelled, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api/v1"+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	for key, values := range c.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("%s %s failed: %v", method, path, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.apiError(method, path, resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func (c *Client) apiError(method, path string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	apiErr := &APIError{StatusCode: resp.StatusCode}
	var payload errorResponse
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		apiErr.Message = payload.Error
	} else {
		apiErr.Message = strings.TrimSpace(string(raw))
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		c.log.Error("%s %s - status %d: %s", method, path, apiErr.StatusCode, apiErr.Message)
	} else {
		c.log.Warn("%s %s - status %d: %s", method, path, apiErr.StatusCode, apiErr.Message)
	}
	return apiErr
}

// AsAPIError достаёт *APIError из цепочки ошибок
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

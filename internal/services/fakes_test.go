package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"galaticketing/internal/domain"
)

// fakeGraduateRepo implements domain.GraduateRepository for tests.
type fakeGraduateRepo struct {
	mu        sync.Mutex
	byID      map[string]*domain.Graduate
	nextID    int
	createErr error
	getErr    error
}

func newFakeGraduateRepo(graduates ...*domain.Graduate) *fakeGraduateRepo {
	f := &fakeGraduateRepo{byID: make(map[string]*domain.Graduate)}
	for _, g := range graduates {
		f.byID[g.ID] = g
	}
	return f
}

func (f *fakeGraduateRepo) Create(ctx context.Context, g *domain.Graduate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.byID {
		if existing.DNI == g.DNI {
			return domain.ErrDuplicateDNI
		}
	}
	f.nextID++
	g.ID = "grad-new-" + string(rune('0'+f.nextID))
	f.byID[g.ID] = g
	return nil
}

func (f *fakeGraduateRepo) GetByID(ctx context.Context, id string) (*domain.Graduate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	if g, ok := f.byID[id]; ok {
		cp := *g
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeGraduateRepo) find(match func(*domain.Graduate) bool) (*domain.Graduate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, g := range f.byID {
		if match(g) {
			cp := *g
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeGraduateRepo) GetByDNI(ctx context.Context, dni string) (*domain.Graduate, error) {
	return f.find(func(g *domain.Graduate) bool { return g.DNI == dni })
}

func (f *fakeGraduateRepo) GetByInvitationCode(ctx context.Context, code string) (*domain.Graduate, error) {
	return f.find(func(g *domain.Graduate) bool { return g.InvitationCode != nil && *g.InvitationCode == code })
}

func (f *fakeGraduateRepo) List(ctx context.Context) ([]*domain.Graduate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.Graduate, 0, len(f.byID))
	for _, g := range f.byID {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeGraduateRepo) DeleteUnpaid(ctx context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.byID[id]
	if !ok || g.Paid {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

// fakeOrderRepo implements domain.OrderRepository for tests.
type fakeOrderRepo struct {
	mu        sync.Mutex
	byID      map[string]*domain.Order
	createErr []error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{byID: make(map[string]*domain.Order)}
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.createErr) > 0 {
		err := f.createErr[0]
		f.createErr = f.createErr[1:]
		if err != nil {
			return err
		}
	}
	if _, ok := f.byID[o.OrderID]; ok {
		return domain.ErrOrderAlreadyProcessed
	}
	cp := *o
	f.byID[o.OrderID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByOrderID(ctx context.Context, orderID string) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if o, ok := f.byID[orderID]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeOrderRepo) MarkFailed(ctx context.Context, orderID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if o, ok := f.byID[orderID]; ok && o.Status == domain.OrderPending {
		o.Status = domain.OrderFailed
	}
	return nil
}

// fakeTicketRepo implements domain.TicketRepository for tests. Issue mirrors the
// transactional checks of the postgres repository against the linked fakes.
type fakeTicketRepo struct {
	mu        sync.Mutex
	byUUID    map[string]*domain.Ticket
	order     []string
	orders    *fakeOrderRepo
	graduates *fakeGraduateRepo
	issueErrs []error
	issued    []*domain.Issuance
	getErr    error
	// markLoses makes MarkUsed report a lost race once.
	markLoses bool
}

func newFakeTicketRepo(orders *fakeOrderRepo, graduates *fakeGraduateRepo) *fakeTicketRepo {
	return &fakeTicketRepo{byUUID: make(map[string]*domain.Ticket), orders: orders, graduates: graduates}
}

func (f *fakeTicketRepo) add(t *domain.Ticket) {
	f.byUUID[t.UUID] = t
	f.order = append(f.order, t.UUID)
}

func (f *fakeTicketRepo) Issue(ctx context.Context, iss *domain.Issuance) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.issued = append(f.issued, iss)
	if len(f.issueErrs) > 0 {
		err := f.issueErrs[0]
		f.issueErrs = f.issueErrs[1:]
		if err != nil {
			return err
		}
	}
	f.orders.mu.Lock()
	defer f.orders.mu.Unlock()
	o, ok := f.orders.byID[iss.OrderID]
	if !ok {
		return domain.ErrNotFound
	}
	if o.Status == domain.OrderPaid {
		return domain.ErrOrderAlreadyProcessed
	}
	f.graduates.mu.Lock()
	defer f.graduates.mu.Unlock()
	g, ok := f.graduates.byID[iss.Ticket.InviterID]
	if !ok {
		return domain.ErrNotFound
	}
	switch iss.Ticket.Type {
	case domain.TicketGraduate:
		if g.Paid {
			return domain.ErrGraduatePaid
		}
		code := iss.InvitationCode
		g.Paid = true
		g.InvitationCode = &code
	case domain.TicketGuest:
		if !g.Paid {
			return domain.ErrInvalidCode
		}
		if f.countGuestsLocked(g.ID) >= domain.MaxGuestsPerGraduate {
			return domain.ErrInvitationExhausted
		}
	}
	cp := *iss.Ticket
	f.add(&cp)
	now := iss.Ticket.CreatedAt
	o.Status = domain.OrderPaid
	o.PaidAt = &now
	return nil
}

func (f *fakeTicketRepo) countGuestsLocked(inviterID string) int {
	n := 0
	for _, t := range f.byUUID {
		if t.InviterID == inviterID && t.Type == domain.TicketGuest {
			n++
		}
	}
	return n
}

func (f *fakeTicketRepo) GetByUUID(ctx context.Context, uuid string) (*domain.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	if t, ok := f.byUUID[uuid]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeTicketRepo) GetByOrderID(ctx context.Context, orderID string) (*domain.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.byUUID {
		if t.OrderID == orderID {
			cp := *t
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeTicketRepo) GetGraduateTicket(ctx context.Context, graduateID string) (*domain.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.byUUID {
		if t.InviterID == graduateID && t.Type == domain.TicketGraduate {
			cp := *t
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeTicketRepo) CountGuests(ctx context.Context, inviterID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.countGuestsLocked(inviterID), nil
}

func (f *fakeTicketRepo) ListGuestNames(ctx context.Context, inviterID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, 0)
	for _, id := range f.order {
		t := f.byUUID[id]
		if t.InviterID == inviterID && t.Type == domain.TicketGuest {
			names = append(names, t.HolderName)
		}
	}
	return names, nil
}

func (f *fakeTicketRepo) ListLatest(ctx context.Context, limit int) ([]*domain.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.Ticket, 0)
	for i := len(f.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.byUUID[f.order[i]])
	}
	return out, nil
}

func (f *fakeTicketRepo) MarkUsed(ctx context.Context, uuid string, cp domain.Checkpoint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.byUUID[uuid]
	if !ok {
		return false, nil
	}
	if f.markLoses {
		f.markLoses = false
		t.MarkUsed(cp)
		return false, nil
	}
	if t.Used(cp) {
		return false, nil
	}
	t.MarkUsed(cp)
	return true, nil
}

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct {
	salt string
}

func (f *fakePasswordHasher) GenerateSalt() (string, error) { return f.salt, nil }
func (f *fakePasswordHasher) Hash(salt, password string) (string, error) {
	return "hash-" + salt + "-" + password, nil
}
func (f *fakePasswordHasher) Compare(hash, salt, password string) error {
	if hash != "hash-"+salt+"-"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeSecrets implements domain.SecretGenerator, returning queued values then a fallback.
type fakeSecrets struct {
	queue    []string
	fallback string
	err      error
}

func (f *fakeSecrets) Generate(length int) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if len(f.queue) > 0 {
		v := f.queue[0]
		f.queue = f.queue[1:]
		return v, nil
	}
	return f.fallback, nil
}

// fakeEmailService records sent emails.
type fakeEmailService struct {
	mu          sync.Mutex
	credentials []*domain.GraduateCredentialsEmailData
	tickets     []*domain.TicketEmailData
	tests       []*domain.TestEmailData
	err         error
}

func (f *fakeEmailService) SendGraduateCredentials(ctx context.Context, data *domain.GraduateCredentialsEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.credentials = append(f.credentials, data)
	return f.err
}

func (f *fakeEmailService) SendTicket(ctx context.Context, data *domain.TicketEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tickets = append(f.tickets, data)
	return f.err
}

func (f *fakeEmailService) SendTestEmail(ctx context.Context, data *domain.TestEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tests = append(f.tests, data)
	return f.err
}

// fakeGateway implements domain.PaymentGateway for tests.
type fakeGateway struct {
	buildErr     error
	notification *domain.GatewayNotification
	verifyErr    error
}

func (f *fakeGateway) BuildForm(order *domain.Order) (*domain.PaymentForm, error) {
	if f.buildErr != nil {
		return nil, f.buildErr
	}
	return &domain.PaymentForm{URL: "https://gateway.test/pay", Params: map[string]string{"Ds_Order": order.OrderID}}, nil
}

func (f *fakeGateway) VerifyNotification(merchantParams, signature string) (*domain.GatewayNotification, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return f.notification, nil
}

// fakeOrderIDs returns queued ids then repeats the last one.
type fakeOrderIDs struct {
	ids []string
}

func (f *fakeOrderIDs) NewOrderID() (string, error) {
	id := f.ids[0]
	if len(f.ids) > 1 {
		f.ids = f.ids[1:]
	}
	return id, nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	err     error
	subject string
	roles   []string
	expiry  time.Duration
}

func (f *fakeTokenIssuer) Issue(subject string, roles []string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.subject, f.roles, f.expiry = subject, roles, expiry
	return "token-" + subject, nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

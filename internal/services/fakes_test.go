package services

import (
	"context"
	"time"

	"leadportal-api/internal/ghl"
	"leadportal-api/internal/models"
	"leadportal-api/internal/payments"
	"leadportal-api/internal/repositories"
)

// fakeAPI is a scripted ghl.API; unset funcs return 200 with an empty body
type fakeAPI struct {
	listLocationsFn       func(token string) (*ghl.Result, error)
	getLocationFn         func(token, locationID string) (*ghl.Result, error)
	listUsersFn           func(token string) (*ghl.Result, error)
	listTagsFn            func(token, locationID string) (*ghl.Result, error)
	createTagFn           func(token, locationID, name string) (*ghl.Result, error)
	listCustomFieldsFn    func(token, locationID string) (*ghl.Result, error)
	listPipelinesFn       func(token, locationID string) (*ghl.Result, error)
	searchContactsFn      func(token, locationID string, limit int) (*ghl.Result, error)
	searchOpportunitiesFn func(token, locationID string, limit int) (*ghl.Result, error)

	calls int
}

func okResult(body string) (*ghl.Result, error) {
	return &ghl.Result{StatusCode: 200, Body: []byte(body)}, nil
}

func (f *fakeAPI) ListLocations(_ context.Context, token string) (*ghl.Result, error) {
	f.calls++
	if f.listLocationsFn != nil {
		return f.listLocationsFn(token)
	}
	return okResult(`[]`)
}

func (f *fakeAPI) GetLocation(_ context.Context, token, locationID string) (*ghl.Result, error) {
	f.calls++
	if f.getLocationFn != nil {
		return f.getLocationFn(token, locationID)
	}
	return okResult(`{}`)
}

func (f *fakeAPI) ListUsers(_ context.Context, token string) (*ghl.Result, error) {
	f.calls++
	if f.listUsersFn != nil {
		return f.listUsersFn(token)
	}
	return okResult(`[]`)
}

func (f *fakeAPI) ListTags(_ context.Context, token, locationID string) (*ghl.Result, error) {
	f.calls++
	if f.listTagsFn != nil {
		return f.listTagsFn(token, locationID)
	}
	return okResult(`{"tags":[]}`)
}

func (f *fakeAPI) CreateTag(_ context.Context, token, locationID, name string) (*ghl.Result, error) {
	f.calls++
	if f.createTagFn != nil {
		return f.createTagFn(token, locationID, name)
	}
	return okResult(`{"tag":{"id":"t1","name":"` + name + `"}}`)
}

func (f *fakeAPI) ListCustomFields(_ context.Context, token, locationID string) (*ghl.Result, error) {
	f.calls++
	if f.listCustomFieldsFn != nil {
		return f.listCustomFieldsFn(token, locationID)
	}
	return okResult(`{"customFields":[]}`)
}

func (f *fakeAPI) ListPipelines(_ context.Context, token, locationID string) (*ghl.Result, error) {
	f.calls++
	if f.listPipelinesFn != nil {
		return f.listPipelinesFn(token, locationID)
	}
	return okResult(`{"pipelines":[]}`)
}

func (f *fakeAPI) SearchContacts(_ context.Context, token, locationID string, limit int) (*ghl.Result, error) {
	f.calls++
	if f.searchContactsFn != nil {
		return f.searchContactsFn(token, locationID, limit)
	}
	return okResult(`{"contacts":[]}`)
}

func (f *fakeAPI) SearchOpportunities(_ context.Context, token, locationID string, limit int) (*ghl.Result, error) {
	f.calls++
	if f.searchOpportunitiesFn != nil {
		return f.searchOpportunitiesFn(token, locationID, limit)
	}
	return okResult(`{"opportunities":[]}`)
}

// fakeUserRepo stores users in a map keyed by id
type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) GetRole(_ context.Context, id string) (models.UserRole, error) {
	user, ok := f.users[id]
	if !ok {
		return "", repositories.ErrNotFound
	}
	return user.Role, nil
}

// fakeSettingRepo holds at most one stored token
type fakeSettingRepo struct {
	setting *models.AdminSetting
}

func (f *fakeSettingRepo) Get(_ context.Context, key string) (*models.AdminSetting, error) {
	if f.setting == nil || f.setting.Key != key {
		return nil, repositories.ErrNotFound
	}
	return f.setting, nil
}

func (f *fakeSettingRepo) Put(_ context.Context, setting *models.AdminSetting) error {
	f.setting = setting
	return nil
}

// fakeOrderRepo appends created orders to a slice
type fakeOrderRepo struct {
	orders []*models.Order
	err    error
}

func (f *fakeOrderRepo) Create(_ context.Context, order *models.Order) error {
	if f.err != nil {
		return f.err
	}
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*models.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeOrderRepo) ListByPaymentIntent(_ context.Context, paymentIntentID string) ([]*models.Order, error) {
	var out []*models.Order
	for _, o := range f.orders {
		if o.PaymentIntentID == paymentIntentID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListByUser(_ context.Context, userID string) ([]*models.Order, error) {
	var out []*models.Order
	for _, o := range f.orders {
		if o.UserID != nil && *o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

// fakeGateway records the last intent request
type fakeGateway struct {
	lastReq *payments.IntentRequest
	calls   int
	err     error
}

func (f *fakeGateway) CreateIntent(_ context.Context, req *payments.IntentRequest) (*payments.Intent, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &payments.Intent{ID: "pi_test_123", ClientSecret: "pi_test_123_secret"}, nil
}

func adminUser(id string) *models.User {
	u := models.NewUser(id+"@example.com", models.RoleAdmin)
	u.ID = id
	return u
}

func regularUser(id string) *models.User {
	u := models.NewUser(id+"@example.com", models.RoleUser)
	u.ID = id
	u.CreatedAt = time.Now().UTC()
	return u
}

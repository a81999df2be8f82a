package impl

import (
	"context"
	"slices"
	"time"

	"venmito/internal/domain/entity"
	"venmito/internal/domain/repository"
)

// memState is the full content of the fake store. Values, not pointers, so a copy is a snapshot.
type memState struct {
	nextID       uint
	people       []entity.Person
	devices      []entity.Device
	links        []entity.PersonDevice
	promotions   []entity.Promotion
	transfers    []entity.Transfer
	transactions []entity.Transaction
	lines        []entity.TransactionItem
	items        []entity.Item
}

func (s memState) clone() memState {
	return memState{
		nextID:       s.nextID,
		people:       slices.Clone(s.people),
		devices:      slices.Clone(s.devices),
		links:        slices.Clone(s.links),
		promotions:   slices.Clone(s.promotions),
		transfers:    slices.Clone(s.transfers),
		transactions: slices.Clone(s.transactions),
		lines:        slices.Clone(s.lines),
		items:        slices.Clone(s.items),
	}
}

// memStore implements TransactionManager and RepositoryFactory in memory.
// Savepoints snapshot the state and restore it when the nested function fails.
type memStore struct {
	state memState
	// faults maps an operation name to a function that may fail it.
	faults map[string]func(arg any) error
}

func newMemStore() *memStore {
	return &memStore{faults: map[string]func(arg any) error{}}
}

func (s *memStore) fail(op string, fn func(arg any) error) {
	s.faults[op] = fn
}

func (s *memStore) check(op string, arg any) error {
	if fn, ok := s.faults[op]; ok {
		return fn(arg)
	}

	return nil
}

func (s *memStore) id() uint {
	s.state.nextID++

	return s.state.nextID
}

func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	snapshot := s.state.clone()
	if err := fn(s); err != nil {
		s.state = snapshot

		return err
	}

	return nil
}

func (s *memStore) Savepoint(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	snapshot := s.state.clone()
	if err := fn(s); err != nil {
		s.state = snapshot

		return err
	}

	return nil
}

func (s *memStore) NewPersonRepository() repository.PersonRepository { return (*memPeople)(s) }
func (s *memStore) NewDeviceRepository() repository.DeviceRepository { return (*memDevices)(s) }
func (s *memStore) NewPromotionRepository() repository.PromotionRepository {
	return (*memPromotions)(s)
}
func (s *memStore) NewTransferRepository() repository.TransferRepository { return (*memTransfers)(s) }
func (s *memStore) NewTransactionRepository() repository.TransactionRepository {
	return (*memTransactions)(s)
}
func (s *memStore) NewItemRepository() repository.ItemRepository { return (*memItems)(s) }

type memPeople memStore

func (r *memPeople) store() *memStore { return (*memStore)(r) }

func (r *memPeople) first(op string, arg any, match func(p *entity.Person) bool) (*entity.Person, error) {
	if err := r.store().check(op, arg); err != nil {
		return nil, err
	}
	for i := range r.state.people {
		if match(&r.state.people[i]) {
			p := r.state.people[i]

			return &p, nil
		}
	}

	return nil, repository.ErrPersonNotFound
}

func (r *memPeople) FindByEmail(_ context.Context, email string) (*entity.Person, error) {
	return r.first("FindByEmail", email, func(p *entity.Person) bool { return p.Email == email })
}

func (r *memPeople) FindByEmailOrTelephone(_ context.Context, email, telephone string) (*entity.Person, error) {
	if email == "" && telephone == "" {
		return nil, repository.ErrPersonNotFound
	}

	return r.first("FindByEmailOrTelephone", email, func(p *entity.Person) bool {
		return (email != "" && p.Email == email) || (telephone != "" && p.Telephone == telephone)
	})
}

func (r *memPeople) FindByTelephone(_ context.Context, telephone string) (*entity.Person, error) {
	return r.first("FindByTelephone", telephone, func(p *entity.Person) bool { return p.Telephone == telephone })
}

func (r *memPeople) FindByIdentifier(_ context.Context, identifier string) (*entity.Person, error) {
	return r.first("FindByIdentifier", identifier, func(p *entity.Person) bool { return p.Identifier == identifier })
}

func (r *memPeople) emailTaken(email string, except uint) bool {
	if email == "" {
		return false
	}
	for _, p := range r.state.people {
		if p.Email == email && p.ID != except {
			return true
		}
	}

	return false
}

func (r *memPeople) CreatePerson(_ context.Context, person *entity.Person) error {
	if err := r.store().check("CreatePerson", person); err != nil {
		return err
	}
	if r.emailTaken(person.Email, 0) {
		return repository.ErrDuplicatePerson
	}
	person.ID = r.store().id()
	stored := *person
	stored.Devices = nil
	r.state.people = append(r.state.people, stored)

	return nil
}

func (r *memPeople) UpdatePerson(_ context.Context, person *entity.Person) error {
	if err := r.store().check("UpdatePerson", person); err != nil {
		return err
	}
	if r.emailTaken(person.Email, person.ID) {
		return repository.ErrDuplicatePerson
	}
	for i := range r.state.people {
		if r.state.people[i].ID == person.ID {
			stored := *person
			stored.Devices = nil
			r.state.people[i] = stored

			return nil
		}
	}

	return repository.ErrPersonNotFound
}

func (r *memPeople) ListPeople(_ context.Context) ([]*entity.Person, error) {
	people := make([]*entity.Person, 0, len(r.state.people))
	for _, p := range r.state.people {
		person := p
		for _, link := range r.state.links {
			if link.PersonID != p.ID {
				continue
			}
			for _, d := range r.state.devices {
				if d.ID == link.DeviceID {
					device := d
					person.Devices = append(person.Devices, &device)
				}
			}
		}
		people = append(people, &person)
	}

	return people, nil
}

type memDevices memStore

func (r *memDevices) store() *memStore { return (*memStore)(r) }

func (r *memDevices) FindDeviceByName(_ context.Context, name string) (*entity.Device, error) {
	if err := r.store().check("FindDeviceByName", name); err != nil {
		return nil, err
	}
	for _, d := range r.state.devices {
		if d.DeviceName == name {
			device := d

			return &device, nil
		}
	}

	return nil, repository.ErrDeviceNotFound
}

func (r *memDevices) CreateDevice(_ context.Context, device *entity.Device) error {
	if err := r.store().check("CreateDevice", device); err != nil {
		return err
	}
	device.ID = r.store().id()
	r.state.devices = append(r.state.devices, *device)

	return nil
}

func (r *memDevices) DeleteLinksByPerson(_ context.Context, personID uint) error {
	if err := r.store().check("DeleteLinksByPerson", personID); err != nil {
		return err
	}
	r.state.links = slices.DeleteFunc(r.state.links, func(l entity.PersonDevice) bool { return l.PersonID == personID })

	return nil
}

func (r *memDevices) LinkDevice(_ context.Context, link *entity.PersonDevice) error {
	if err := r.store().check("LinkDevice", link); err != nil {
		return err
	}
	for _, l := range r.state.links {
		if l.PersonID == link.PersonID && l.DeviceID == link.DeviceID {
			return nil
		}
	}
	link.ID = r.store().id()
	r.state.links = append(r.state.links, *link)

	return nil
}

type memPromotions memStore

func (r *memPromotions) store() *memStore { return (*memStore)(r) }

func (r *memPromotions) FindPromotion(_ context.Context, personID uint, promotion string, promotionDate time.Time) (*entity.Promotion, error) {
	for _, p := range r.state.promotions {
		if p.PersonID != nil && *p.PersonID == personID && p.Promotion == promotion && p.PromotionDate.Equal(promotionDate) {
			found := p

			return &found, nil
		}
	}

	return nil, repository.ErrPromotionNotFound
}

func (r *memPromotions) CreatePromotion(_ context.Context, promotion *entity.Promotion) error {
	if err := r.store().check("CreatePromotion", promotion); err != nil {
		return err
	}
	promotion.ID = r.store().id()
	r.state.promotions = append(r.state.promotions, *promotion)

	return nil
}

func (r *memPromotions) UpdatePromotionResponse(_ context.Context, id uint, responded bool) (*entity.Promotion, error) {
	for i := range r.state.promotions {
		if r.state.promotions[i].ID == id {
			r.state.promotions[i].Responded = responded
			updated := r.state.promotions[i]

			return &updated, nil
		}
	}

	return nil, repository.ErrPromotionNotFound
}

func (r *memPromotions) ListPromotions(_ context.Context) ([]*entity.Promotion, error) {
	promotions := make([]*entity.Promotion, 0, len(r.state.promotions))
	for _, p := range r.state.promotions {
		promotion := p
		promotions = append(promotions, &promotion)
	}

	return promotions, nil
}

type memTransfers memStore

func (r *memTransfers) store() *memStore { return (*memStore)(r) }

func (r *memTransfers) CreateTransfer(_ context.Context, transfer *entity.Transfer) error {
	if err := r.store().check("CreateTransfer", transfer); err != nil {
		return err
	}
	transfer.ID = r.store().id()
	r.state.transfers = append(r.state.transfers, *transfer)

	return nil
}

func (r *memTransfers) ListTransfers(_ context.Context) ([]*entity.Transfer, error) {
	transfers := make([]*entity.Transfer, 0, len(r.state.transfers))
	for _, t := range r.state.transfers {
		transfer := t
		transfers = append(transfers, &transfer)
	}

	return transfers, nil
}

type memTransactions memStore

func (r *memTransactions) store() *memStore { return (*memStore)(r) }

func (r *memTransactions) FindByExternalID(_ context.Context, externalID string) (*entity.Transaction, error) {
	for _, t := range r.state.transactions {
		if t.ExternalID == externalID {
			found := t

			return &found, nil
		}
	}

	return nil, repository.ErrTransactionNotFound
}

func (r *memTransactions) CreateTransaction(_ context.Context, transaction *entity.Transaction) error {
	if err := r.store().check("CreateTransaction", transaction); err != nil {
		return err
	}
	transaction.ID = r.store().id()
	stored := *transaction
	stored.Items = nil
	r.state.transactions = append(r.state.transactions, stored)

	return nil
}

func (r *memTransactions) AddTransactionItem(_ context.Context, item *entity.TransactionItem) error {
	if err := r.store().check("AddTransactionItem", item); err != nil {
		return err
	}
	item.ID = r.store().id()
	r.state.lines = append(r.state.lines, *item)

	return nil
}

func (r *memTransactions) ListTransactions(_ context.Context) ([]*entity.Transaction, error) {
	transactions := make([]*entity.Transaction, 0, len(r.state.transactions))
	for _, t := range r.state.transactions {
		transaction := t
		for _, line := range r.state.lines {
			if line.TransactionID == t.ID {
				l := line
				transaction.Items = append(transaction.Items, &l)
			}
		}
		transactions = append(transactions, &transaction)
	}

	return transactions, nil
}

type memItems memStore

func (r *memItems) store() *memStore { return (*memStore)(r) }

func (r *memItems) FindItemByName(_ context.Context, name string) (*entity.Item, error) {
	for _, item := range r.state.items {
		if item.Name == name {
			found := item

			return &found, nil
		}
	}

	return nil, repository.ErrItemNotFound
}

func (r *memItems) CreateItem(_ context.Context, item *entity.Item) error {
	if err := r.store().check("CreateItem", item); err != nil {
		return err
	}
	for _, existing := range r.state.items {
		if existing.Name == item.Name {
			return repository.ErrDuplicateItem
		}
	}
	item.ID = r.store().id()
	r.state.items = append(r.state.items, *item)

	return nil
}

func (r *memItems) ListItems(_ context.Context) ([]*entity.Item, error) {
	items := make([]*entity.Item, 0, len(r.state.items))
	for _, item := range r.state.items {
		found := item
		items = append(items, &found)
	}

	return items, nil
}

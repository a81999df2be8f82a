package impl

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"
	"unicode"

	"venmito/config"
	"venmito/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Field aliases accepted per family. Keys are renamed only when the canonical key is absent.
var (
	personAliases = map[string]string{
		"phone":         "telephone",
		"firstName":     "first_name",
		"lastName":      "last_name",
		"identifier":    "id",
		"date_of_birth": "dob",
	}
	promotionAliases = map[string]string{
		"email":         "client_email",
		"phone":         "telephone",
		"promotionDate": "promotion_date",
		"date":          "promotion_date",
	}
	transferAliases = map[string]string{
		"senderId":    "sender_id",
		"recipientId": "recipient_id",
	}
	transactionAliases = map[string]string{
		"@_id":            "external_id",
		"id":              "external_id",
		"externalId":      "external_id",
		"date":            "transaction_date",
		"transactionDate": "transaction_date",
		"telephone":       "phone",
	}
	transactionItemAliases = map[string]string{
		"name":         "item",
		"itemName":     "item",
		"pricePerItem": "price_per_item",
	}
)

// personRecord is a validated people row.
type personRecord struct {
	Identifier string `validate:"max=50"`
	FirstName  string `validate:"max=100"`
	LastName   string `validate:"required_without_all=Email Identifier FirstName,max=100"`
	Telephone  string `validate:"max=50"`
	Email      string `validate:"omitempty,email,max=255"`
	City       string `validate:"max=100"`
	Country    string `validate:"max=100"`
	Address    string `validate:"max=255"`
	DOB        *time.Time
	RawDOB     string   // Kept when DOB could not be parsed.
	Devices    []string `validate:"dive,max=100"`
}

// promotionRecord is a validated promotions row.
type promotionRecord struct {
	Email         string `validate:"required_without=Telephone,max=255"`
	Telephone     string `validate:"max=50"`
	Promotion     string `validate:"required,max=255"`
	Responded     bool
	PromotionDate time.Time
}

// transferRecord is a validated transfers row.
type transferRecord struct {
	SenderIdentifier    string `validate:"required,max=50"`
	RecipientIdentifier string `validate:"required,max=50"`
	Amount              decimal.Decimal
	Date                time.Time `validate:"required"`
}

// transactionRecord is a validated transactions row.
type transactionRecord struct {
	ExternalID string    `validate:"max=100"`
	Phone      string    `validate:"max=50"`
	Store      string    `validate:"required,max=255"`
	Date       time.Time `validate:"required"`
	Total      decimal.Decimal
	Lines      []transactionLine
}

// transactionLine is one normalized item line. Name may be empty; such lines fail to associate.
type transactionLine struct {
	Name         string
	Quantity     int
	UnitPrice    decimal.Decimal
	LineTotal    decimal.Decimal
	DefaultPrice decimal.Decimal
}

// normalizer turns raw upload rows into validated records.
type normalizer struct {
	identifierWidth int
	dateLayouts     []string
	validate        *validator.Validate
}

func newNormalizer(cfg *config.IngestionConfig) *normalizer {
	n := &normalizer{
		identifierWidth: 4,
		dateLayouts:     config.DefaultDateLayouts,
		validate:        validator.New(),
	}
	if cfg != nil {
		if cfg.IdentifierWidth > 0 {
			n.identifierWidth = cfg.IdentifierWidth
		}
		if len(cfg.DateLayouts) > 0 {
			n.dateLayouts = cfg.DateLayouts
		}
	}

	return n
}

// decode canonicalizes aliases and decodes record into out with weak typing.
func (n *normalizer) decode(record usecase.RawRecord, aliases map[string]string, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       timeToStringHook,
	})
	if err != nil {
		return errors.Wrap(err, "failed to build record decoder")
	}

	return errors.Wrap(decoder.Decode(canonicalize(record, aliases)), "malformed record")
}

// timeToStringHook renders timestamps produced by YAML decoding back to text.
func timeToStringHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	t, ok := data.(time.Time)
	if !ok || to.Kind() != reflect.String {
		return data, nil
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(dateLayout), nil
	}

	return t.Format(time.RFC3339), nil
}

func canonicalize(record usecase.RawRecord, aliases map[string]string) map[string]any {
	out := make(map[string]any, len(record))
	for key, value := range record {
		out[strings.TrimSpace(key)] = value
	}

	for alias, canonical := range aliases {
		value, ok := out[alias]
		if !ok {
			continue
		}
		if _, exists := out[canonical]; !exists {
			out[canonical] = value
		}
		delete(out, alias)
	}

	return out
}

func (n *normalizer) person(record usecase.RawRecord) (*personRecord, error) {
	fields, flagged := takeDeviceFlags(record)

	var raw usecase.RawPerson
	if err := n.decode(fields, personAliases, &raw); err != nil {
		return nil, err
	}

	devices, err := deviceEntries(raw.Devices)
	if err != nil {
		return nil, err
	}

	rec := &personRecord{
		Identifier: n.padIdentifier(raw.ID),
		FirstName:  strings.TrimSpace(raw.FirstName),
		LastName:   strings.TrimSpace(raw.LastName),
		Telephone:  strings.TrimSpace(raw.Telephone),
		Email:      strings.TrimSpace(raw.Email),
		Country:    strings.TrimSpace(raw.Country),
		Devices:    uniqueDevices(append(splitDevices(devices), flagged...)),
	}

	if rec.FirstName == "" && rec.LastName == "" && strings.TrimSpace(raw.Name) != "" {
		rec.FirstName, rec.LastName = splitName(raw.Name)
	}

	city, country := splitCity(raw.City)
	rec.City = city
	if rec.Country == "" {
		rec.Country = country
	}
	if err := n.applyLocation(rec, raw.Location); err != nil {
		return nil, err
	}

	if dob := strings.TrimSpace(raw.DOB); dob != "" {
		if parsed, err := n.parseDate(dob); err == nil {
			rec.DOB = &parsed
		} else {
			rec.RawDOB = dob
		}
	}

	if err := n.validate.Struct(rec); err != nil {
		return nil, errors.Wrap(err, "invalid person")
	}

	return rec, nil
}

// applyLocation overlays a location object on rec. A scalar location is kept as the address.
func (n *normalizer) applyLocation(rec *personRecord, location any) error {
	switch v := location.(type) {
	case nil:
		return nil
	case map[string]any:
		var loc usecase.RawLocation
		if err := n.decode(v, nil, &loc); err != nil {
			return errors.Wrap(err, "location")
		}
		if city := strings.TrimSpace(loc.City); city != "" {
			rec.City = city
		}
		if country := strings.TrimSpace(loc.Country); country != "" {
			rec.Country = country
		}
		if address := strings.TrimSpace(loc.Address); address != "" {
			rec.Address = address
		}
	default:
		rec.Address = strings.TrimSpace(fmt.Sprint(v))
	}

	return nil
}

func (n *normalizer) promotion(record usecase.RawRecord, batchDate time.Time) (*promotionRecord, error) {
	var raw usecase.RawPromotion
	if err := n.decode(record, promotionAliases, &raw); err != nil {
		return nil, err
	}

	rec := &promotionRecord{
		Email:         strings.TrimSpace(raw.ClientEmail),
		Telephone:     strings.TrimSpace(raw.Telephone),
		Promotion:     strings.TrimSpace(raw.Promotion),
		Responded:     parseResponded(raw.Responded),
		PromotionDate: batchDate,
	}

	if date := strings.TrimSpace(raw.PromotionDate); date != "" {
		parsed, err := n.parseDate(date)
		if err != nil {
			return nil, err
		}
		rec.PromotionDate = parsed
	}

	if err := n.validate.Struct(rec); err != nil {
		return nil, errors.Wrap(err, "invalid promotion")
	}

	return rec, nil
}

func (n *normalizer) transfer(record usecase.RawRecord) (*transferRecord, error) {
	var raw usecase.RawTransfer
	if err := n.decode(record, transferAliases, &raw); err != nil {
		return nil, err
	}

	if strings.TrimSpace(raw.Amount) == "" {
		return nil, errors.New("amount is required")
	}
	amount, err := parseDecimal(raw.Amount)
	if err != nil {
		return nil, errors.Wrap(err, "invalid amount")
	}

	rec := &transferRecord{
		SenderIdentifier:    n.padIdentifier(raw.SenderID),
		RecipientIdentifier: n.padIdentifier(raw.RecipientID),
		Amount:              amount.Round(2),
	}

	if date := strings.TrimSpace(raw.Date); date != "" {
		if rec.Date, err = n.parseDate(date); err != nil {
			return nil, err
		}
	}

	if err := n.validate.Struct(rec); err != nil {
		return nil, errors.Wrap(err, "invalid transfer")
	}

	return rec, nil
}

func (n *normalizer) transaction(record usecase.RawRecord) (*transactionRecord, error) {
	var raw usecase.RawTransaction
	if err := n.decode(record, transactionAliases, &raw); err != nil {
		return nil, err
	}

	rec := &transactionRecord{
		ExternalID: strings.TrimSpace(raw.ExternalID),
		Phone:      strings.TrimSpace(raw.Phone),
		Store:      strings.TrimSpace(raw.Store),
		Total:      decimal.Zero,
	}

	if date := strings.TrimSpace(raw.TransactionDate); date != "" {
		parsed, err := n.parseDate(date)
		if err != nil {
			return nil, err
		}
		rec.Date = parsed
	}

	for i, entry := range itemEntries(raw.Items) {
		line, price, err := n.transactionLine(entry)
		if err != nil {
			return nil, errors.Wrapf(err, "item %d", i)
		}
		rec.Total = rec.Total.Add(price)
		rec.Lines = append(rec.Lines, line)
	}
	rec.Total = rec.Total.Round(2)

	if err := n.validate.Struct(rec); err != nil {
		return nil, errors.Wrap(err, "invalid transaction")
	}

	return rec, nil
}

// transactionLine normalizes one item and returns its contribution to the transaction total.
func (n *normalizer) transactionLine(entry any) (transactionLine, decimal.Decimal, error) {
	var raw usecase.RawTransactionItem

	fields, ok := entry.(map[string]any)
	if !ok {
		// A bare value is an item name without price.
		fields = map[string]any{"item": entry}
	}
	if err := n.decode(fields, transactionItemAliases, &raw); err != nil {
		return transactionLine{}, decimal.Zero, err
	}

	price, err := parseDecimal(raw.Price)
	if err != nil {
		return transactionLine{}, decimal.Zero, errors.Wrap(err, "invalid price")
	}
	pricePerItem, err := parseDecimal(raw.PricePerItem)
	if err != nil {
		return transactionLine{}, decimal.Zero, errors.Wrap(err, "invalid price_per_item")
	}

	quantity := parseQuantity(raw.Quantity)

	unit := pricePerItem
	if strings.TrimSpace(raw.PricePerItem) == "" && strings.TrimSpace(raw.Price) != "" {
		unit = price.Div(decimal.NewFromInt(int64(quantity)))
	}
	unit = unit.Round(2)

	line := transactionLine{
		Name:         strings.TrimSpace(raw.Item),
		Quantity:     quantity,
		UnitPrice:    unit,
		LineTotal:    unit.Mul(decimal.NewFromInt(int64(quantity))).Round(2),
		DefaultPrice: unit,
	}

	return line, price, nil
}

// itemEntries flattens the item shapes of transaction payloads into a list.
func itemEntries(items any) []any {
	switch v := items.(type) {
	case nil:
		return nil
	case []any:
		return v
	case map[string]any:
		switch inner := v["item"].(type) {
		case []any:
			return inner
		case map[string]any:
			return []any{inner}
		}

		return []any{v}
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}

		return []any{v}
	default:
		return []any{v}
	}
}

// padIdentifier left-pads numeric identifiers with zeros to the configured width.
func (n *normalizer) padIdentifier(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || len(id) >= n.identifierWidth {
		return id
	}
	for _, r := range id {
		if !unicode.IsDigit(r) {
			return id
		}
	}

	return strings.Repeat("0", n.identifierWidth-len(id)) + id
}

// parseDate tries every configured layout and returns the UTC calendar day.
func (n *normalizer) parseDate(value string) (time.Time, error) {
	for _, layout := range n.dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return truncateToDay(t), nil
		}
	}

	return time.Time{}, errors.Errorf("unrecognized date %q", value)
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func parseDecimal(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, "$")
	value = strings.ReplaceAll(value, ",", "")
	if value == "" {
		return decimal.Zero, nil
	}

	return decimal.NewFromString(value)
}

// parseQuantity defaults missing, malformed and non-positive quantities to 1.
func parseQuantity(value string) int {
	q, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil || !q.IsPositive() {
		return 1
	}
	if n := q.IntPart(); n > 0 {
		return int(n)
	}

	return 1
}

// parseResponded is true only for a case-insensitive "yes" or a native true.
func parseResponded(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "yes")
	default:
		return false
	}
}

// deviceFlagKeys are the per-device presence columns of people files, e.g. "Android: 1".
var deviceFlagKeys = []string{"android", "desktop", "iphone"}

// takeDeviceFlags removes device presence columns from record and returns the devices marked present.
func takeDeviceFlags(record usecase.RawRecord) (usecase.RawRecord, []string) {
	rest := make(usecase.RawRecord, len(record))
	flags := make(map[string]any)
	for key, value := range record {
		lower := strings.ToLower(strings.TrimSpace(key))
		if slices.Contains(deviceFlagKeys, lower) {
			flags[lower] = value

			continue
		}
		rest[key] = value
	}

	var devices []string
	for _, key := range deviceFlagKeys {
		if value, ok := flags[key]; ok && deviceFlagSet(value) {
			devices = append(devices, strings.ToUpper(key[:1])+key[1:])
		}
	}

	return rest, devices
}

// deviceFlagSet is true for 1, true, "1", "true", "yes" and "y".
func deviceFlagSet(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	default:
		switch strings.ToLower(strings.TrimSpace(fmt.Sprint(v))) {
		case "1", "true", "yes", "y":
			return true
		}

		return false
	}
}

// deviceEntries flattens the device shapes of people payloads: a list, a single name,
// or the {"device": ...} container XML produces for <devices><device>..</device></devices>.
func deviceEntries(value any) ([]string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []any:
		var names []string
		for _, entry := range v {
			inner, err := deviceEntries(entry)
			if err != nil {
				return nil, err
			}
			names = append(names, inner...)
		}

		return names, nil
	case map[string]any:
		if inner, ok := v["device"]; ok {
			return deviceEntries(inner)
		}
		if text, ok := v["#text"]; ok {
			return deviceEntries(text)
		}

		return nil, errors.New("devices: expected a list of device names")
	default:
		return []string{fmt.Sprint(v)}, nil
	}
}

func uniqueDevices(names []string) []string {
	var kept []string
	for _, name := range names {
		if !slices.Contains(kept, name) {
			kept = append(kept, name)
		}
	}

	return kept
}

// splitCity separates a "City, Country" value. Segments after the second are ignored.
func splitCity(value string) (string, string) {
	parts := strings.Split(value, ",")
	city := strings.TrimSpace(parts[0])
	if len(parts) < 2 {
		return city, ""
	}

	return city, strings.TrimSpace(parts[1])
}

func splitDevices(values []string) []string {
	var devices []string
	for _, value := range values {
		for _, name := range strings.FieldsFunc(value, func(r rune) bool {
			return r == ',' || r == ';' || r == '|'
		}) {
			if name = strings.TrimSpace(name); name != "" {
				devices = append(devices, name)
			}
		}
	}

	return devices
}

func splitName(name string) (string, string) {
	first, last, _ := strings.Cut(strings.TrimSpace(name), " ")

	return first, strings.TrimSpace(last)
}

// identifierKey joins identifying values for logs and diagnostics.
func identifierKey(parts ...string) string {
	var kept []string
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}

	return strings.Join(kept, "/")
}

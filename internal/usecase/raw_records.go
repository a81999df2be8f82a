package usecase

// Raw record shapes per family. Field names follow the upload payloads; values are decoded
// with weak typing, so numbers and strings are interchangeable for text fields.

// RawLocation is the nested location object of a people upload.
type RawLocation struct {
	City    string `mapstructure:"City"`
	Country string `mapstructure:"Country"`
	Address string `mapstructure:"address"`
}

// RawPerson is a row of a people upload.
type RawPerson struct {
	ID        string `mapstructure:"id"` // External identifier, zero-padded when numeric.
	Name      string `mapstructure:"name"`
	FirstName string `mapstructure:"first_name"`
	LastName  string `mapstructure:"last_name"`
	Telephone string `mapstructure:"telephone"`
	Email     string `mapstructure:"email"`
	City      string `mapstructure:"city"` // "City, Country" is split in two.
	Country   string `mapstructure:"country"`
	Location  any    `mapstructure:"location"` // A RawLocation object or a free-form address.
	DOB       string `mapstructure:"dob"`
	Devices   any    `mapstructure:"devices"` // A list, {"device": ...} from XML, or text split on , ; or |.
}

// RawPromotion is a row of a promotions upload.
type RawPromotion struct {
	ClientEmail   string `mapstructure:"client_email"`
	Telephone     string `mapstructure:"telephone"`
	Promotion     string `mapstructure:"promotion"`
	Responded     any    `mapstructure:"responded"` // "Yes"/"No" text or a native boolean.
	PromotionDate string `mapstructure:"promotion_date"`
}

// RawTransfer is a row of a transfers upload.
type RawTransfer struct {
	SenderID    string `mapstructure:"sender_id"`
	RecipientID string `mapstructure:"recipient_id"`
	Amount      string `mapstructure:"amount"`
	Date        string `mapstructure:"date"`
}

// RawTransaction is a row of a transactions upload.
type RawTransaction struct {
	ExternalID      string `mapstructure:"external_id"`
	Phone           string `mapstructure:"phone"`
	Store           string `mapstructure:"store"`
	TransactionDate string `mapstructure:"transaction_date"`
	Items           any    `mapstructure:"items"` // {"item": [...]}, {"item": {...}} or a plain list.
}

// RawTransactionItem is one line of a transaction.
type RawTransactionItem struct {
	Item         string `mapstructure:"item"` // Item name.
	Price        string `mapstructure:"price"`
	PricePerItem string `mapstructure:"price_per_item"`
	Quantity     string `mapstructure:"quantity"`
}

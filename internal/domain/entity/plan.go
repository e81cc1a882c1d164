package entity

import "github.com/shopspring/decimal"

// Plan is a subscription tier. OfferPrice is the price currently charged;
// SalePrice is the struck-through reference price shown next to it.
type Plan struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	OfferPrice decimal.Decimal `json:"offer_price"`
	SalePrice  decimal.Decimal `json:"sale_price"`
	NoOfDays   int             `json:"no_of_days"`

	// Quotas.
	ManageBusiness  int    `json:"manage_business"`
	Branch          int    `json:"branch"`
	AccessUsers     int    `json:"access_users"`
	AccessOn        string `json:"access_on"`
	Staff           int    `json:"staff"`
	Godowns         int    `json:"godowns"`
	EwayBills       int    `json:"eway_bills"`
	FreeWhatsappSMS int    `json:"free_whatsapp_sms"`

	// Feature toggles.
	MultipleInvoiceThemes bool `json:"multiple_invoice_themes"`
	PrintBarcodes         bool `json:"print_barcodes"`
	OwnOnlineStore        bool `json:"own_online_store"`
	CAAccess              bool `json:"ca_access"`
	DesktopApp            bool `json:"desktop_app"`
	GenerateEInvoices     bool `json:"generate_einvoices"`
	POSBilling            bool `json:"pos_billing"`
	UserActivityTracker   bool `json:"user_activity_tracker"`
	AutomatedBilling      bool `json:"automated_billing"`
	BulkDownloadPrint     bool `json:"bulk_download_print"`
	ReferralBonus         bool `json:"referral_bonus"`
	UpdateBulkItem        bool `json:"update_bulk_item"`
	PartyCreditLimit      bool `json:"party_credit_limit"`
	PaymentNotification   bool `json:"payment_notification"`

	IsActive bool `json:"is_active"`
}

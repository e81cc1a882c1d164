package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/mydailybill/mdb-admin/internal/domain/entity"
)

// Renderer writes command output in the selected format. Text output is for
// humans; json output is stable enough for scripting.
type Renderer struct {
	out    io.Writer
	format string
}

// NewRenderer builds a renderer for the given output format.
func NewRenderer(out io.Writer, format string) *Renderer {
	return &Renderer{out: out, format: format}
}

// JSON pretty-prints any value as indented JSON.
func (r *Renderer) JSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.out, string(data))
	return err
}

// Raw pretty-prints a raw JSON payload, passing it through untouched when it
// does not re-indent cleanly.
func (r *Renderer) Raw(data json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		_, werr := fmt.Fprintln(r.out, string(data))
		return werr
	}
	_, err := fmt.Fprintln(r.out, buf.String())
	return err
}

// Line writes one formatted line.
func (r *Renderer) Line(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Companies renders the companies listing.
func (r *Renderer) Companies(companies []entity.Company) error {
	if r.format == "json" {
		return r.JSON(companies)
	}
	w := tabwriter.NewWriter(r.out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTENANT\tNAME\tEMAIL\tCITY\tSTATUS\tUSERS")
	for _, c := range companies {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			c.ID, c.TenantID, c.DisplayName(), c.Email, c.City, c.NormalizedStatus(), c.UserCount)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	r.Line("")
	r.Line("%d companies", len(companies))
	return nil
}

// CompanyDetail renders one company with its nested business and users.
func (r *Renderer) CompanyDetail(c *entity.Company) error {
	if r.format == "json" {
		return r.JSON(c)
	}
	r.Line("ID:         %s", c.ID)
	r.Line("Tenant:     %s", c.TenantID)
	r.Line("Name:       %s", c.DisplayName())
	r.Line("Email:      %s", c.Email)
	r.Line("Phone:      %s", c.Phone)
	r.Line("City:       %s", c.City)
	r.Line("State:      %s", c.State)
	r.Line("Status:     %s", c.NormalizedStatus())
	r.Line("Users:      %d", c.UserCount)
	if !c.CreatedAt.IsZero() {
		r.Line("Created:    %s", c.CreatedAt.Format("2006-01-02"))
	}
	if b := c.Business; b != nil {
		r.Line("")
		r.Line("Business")
		r.Line("  Address:  %s", b.Address)
		r.Line("  City:     %s", b.City)
		r.Line("  State:    %s", b.State)
		r.Line("  Pincode:  %s", b.Pincode)
		r.Line("  GST:      %s", b.GSTNumber)
		r.Line("  Verified: %s", yesNo(b.IsVerified == 1))
	}
	if len(c.UserDetails) > 0 {
		r.Line("")
		r.Line("Users")
		for _, u := range c.UserDetails {
			r.Line("  %s <%s> %s key=%s", u.Name, u.Email, u.RoleName(), u.MaskedKey())
		}
	}
	return nil
}

// Plans renders the plans listing.
func (r *Renderer) Plans(plans []entity.Plan) error {
	if r.format == "json" {
		return r.JSON(plans)
	}
	w := tabwriter.NewWriter(r.out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tOFFER\tSALE\tDAYS\tACTIVE")
	for _, p := range plans {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			p.ID, p.Name, p.OfferPrice.StringFixed(2), p.SalePrice.StringFixed(2),
			p.NoOfDays, yesNo(p.IsActive))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	r.Line("")
	r.Line("%d plans", len(plans))
	return nil
}

// PlanDetail renders one plan with quotas and feature toggles.
func (r *Renderer) PlanDetail(p *entity.Plan) error {
	if r.format == "json" {
		return r.JSON(p)
	}
	r.Line("ID:          %s", p.ID)
	r.Line("Name:        %s", p.Name)
	if p.Description != "" {
		r.Line("Description: %s", p.Description)
	}
	r.Line("Offer price: %s", p.OfferPrice.StringFixed(2))
	r.Line("Sale price:  %s", p.SalePrice.StringFixed(2))
	r.Line("Days:        %d", p.NoOfDays)
	r.Line("Active:      %s", yesNo(p.IsActive))
	r.Line("")
	r.Line("Quotas")
	r.Line("  Businesses:   %d", p.ManageBusiness)
	r.Line("  Branches:     %d", p.Branch)
	r.Line("  Users:        %d", p.AccessUsers)
	r.Line("  Staff:        %d", p.Staff)
	r.Line("  Godowns:      %d", p.Godowns)
	r.Line("  E-way bills:  %d", p.EwayBills)
	r.Line("  WhatsApp SMS: %d", p.FreeWhatsappSMS)
	if p.AccessOn != "" {
		r.Line("  Access on:    %s", p.AccessOn)
	}
	r.Line("")
	r.Line("Features")
	for _, f := range planFeatures(p) {
		r.Line("  %-24s %s", f.name, yesNo(f.on))
	}
	return nil
}

type planFeature struct {
	name string
	on   bool
}

func planFeatures(p *entity.Plan) []planFeature {
	return []planFeature{
		{"Invoice themes", p.MultipleInvoiceThemes},
		{"Barcode printing", p.PrintBarcodes},
		{"Online store", p.OwnOnlineStore},
		{"CA access", p.CAAccess},
		{"Desktop app", p.DesktopApp},
		{"E-invoices", p.GenerateEInvoices},
		{"POS billing", p.POSBilling},
		{"Activity tracker", p.UserActivityTracker},
		{"Automated billing", p.AutomatedBilling},
		{"Bulk download/print", p.BulkDownloadPrint},
		{"Referral bonus", p.ReferralBonus},
		{"Bulk item update", p.UpdateBulkItem},
		{"Party credit limit", p.PartyCreditLimit},
		{"Payment notification", p.PaymentNotification},
	}
}

// Users renders the platform users listing. Keys are always masked.
func (r *Renderer) Users(users []entity.CompanyUser) error {
	if r.format == "json" {
		return r.JSON(users)
	}
	w := tabwriter.NewWriter(r.out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tACTIVE\tKEY")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.Name, u.Email, u.RoleName(), yesNo(u.IsActive == 1), u.MaskedKey())
	}
	if err := w.Flush(); err != nil {
		return err
	}
	r.Line("")
	r.Line("%d users", len(users))
	return nil
}

// Session renders the whoami view. The expiry line only appears when the
// token is a JWT carrying one.
func (r *Renderer) Session(rec *entity.SessionRecord, expiry time.Time, hasExpiry bool) error {
	if r.format == "json" {
		out := map[string]any{
			"name":      rec.Name,
			"email":     rec.Email,
			"userType":  rec.UserType,
			"loginTime": rec.LoginTime,
			"companies": len(rec.Companies),
		}
		if hasExpiry {
			out["tokenExpiry"] = expiry
		}
		return r.JSON(out)
	}
	r.Line("Name:       %s", rec.Name)
	r.Line("Email:      %s", rec.Email)
	r.Line("User type:  %s", rec.UserType)
	r.Line("Logged in:  %s", rec.LoginTime.Format(time.RFC3339))
	r.Line("Companies:  %d", len(rec.Companies))
	if hasExpiry {
		r.Line("Expires:    %s", expiry.Format(time.RFC3339))
	}
	return nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

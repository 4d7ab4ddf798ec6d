package models

// CompanyInfo holds the company details printed on receipts and reports.
type CompanyInfo struct {
	Name    string `json:"name,omitempty"`
	TaxID   string `json:"taxId,omitempty"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Logo    string `json:"logo,omitempty"`
}

// SMTPSettings holds outgoing mail configuration.
type SMTPSettings struct {
	Server   string `json:"server,omitempty"`
	Port     int    `json:"port,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	UseTLS   bool   `json:"useTLS"`
}

// Settings is the company-wide configuration singleton, seeded at startup.
type Settings struct {
	ID string `json:"id"`

	Company CompanyInfo  `json:"company"`
	SMTP    SMTPSettings `json:"smtp"`

	// DefaultCollectionDay is the day of the month rent is collected.
	DefaultCollectionDay int `json:"defaultCollectionDay"`

	// DefaultExpenseTariff is the monthly utilities amount pre-filled on
	// new contracts.
	DefaultExpenseTariff float64 `json:"defaultExpenseTariff"`
}

// SettingsPatch is a partial update for the settings singleton.
type SettingsPatch struct {
	Company              *CompanyInfo  `json:"company"`
	SMTP                 *SMTPSettings `json:"smtp"`
	DefaultCollectionDay *int          `json:"defaultCollectionDay"`
	DefaultExpenseTariff *float64      `json:"defaultExpenseTariff"`
}

// IsEmpty reports whether the patch carries no changes.
func (p *SettingsPatch) IsEmpty() bool {
	return p.Company == nil && p.SMTP == nil &&
		p.DefaultCollectionDay == nil && p.DefaultExpenseTariff == nil
}

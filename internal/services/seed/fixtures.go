package seed

import (
	"invoice-dashboard-backend/internal/models"
)

type UserFixture struct {
	Name     string
	Email    string
	Password string
}

type CustomerFixture struct {
	UUID     string
	Name     string
	Email    string
	ImageURL string
}

// InvoiceFixture references its customer by uuid; Date is YYYY-MM-DD.
type InvoiceFixture struct {
	CustomerUUID string
	Amount       int64
	Status       string
	Date         string
}

type Fixtures struct {
	Users     []UserFixture
	Customers []CustomerFixture
	Invoices  []InvoiceFixture
	Revenue   []models.Revenue
}

const (
	evilRabbit      = "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa"
	delbaDeOliveira = "3958dc9e-712f-4377-85e9-fec4b6a6442a"
	leeRobinson     = "3958dc9e-742f-4377-85e9-fec4b6a6442a"
	michaelNovotny  = "76d65c26-f784-44a2-ac19-586678f7c2f2"
	amyBurns        = "CC27C14A-0ACF-4F4A-A6C9-D45682C144B9"
	balazsOrban     = "13D07535-C59E-4157-A011-F8D2EF4E0CBB"
)

// Placeholder is the dashboard's demo data set.
var Placeholder = Fixtures{
	Users: []UserFixture{
		{Name: "User", Email: "user@nextmail.com", Password: "123456"},
	},
	Customers: []CustomerFixture{
		{UUID: evilRabbit, Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
		{UUID: delbaDeOliveira, Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
		{UUID: leeRobinson, Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
		{UUID: michaelNovotny, Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
		{UUID: amyBurns, Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
		{UUID: balazsOrban, Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
	},
	Invoices: []InvoiceFixture{
		{CustomerUUID: evilRabbit, Amount: 15795, Status: models.InvoiceStatusPending, Date: "2022-12-06"},
		{CustomerUUID: delbaDeOliveira, Amount: 20348, Status: models.InvoiceStatusPending, Date: "2022-11-14"},
		{CustomerUUID: amyBurns, Amount: 3040, Status: models.InvoiceStatusPaid, Date: "2022-10-29"},
		{CustomerUUID: michaelNovotny, Amount: 44800, Status: models.InvoiceStatusPaid, Date: "2023-09-10"},
		{CustomerUUID: balazsOrban, Amount: 34577, Status: models.InvoiceStatusPending, Date: "2023-08-05"},
		{CustomerUUID: leeRobinson, Amount: 54246, Status: models.InvoiceStatusPending, Date: "2023-07-16"},
		{CustomerUUID: evilRabbit, Amount: 666, Status: models.InvoiceStatusPending, Date: "2023-06-27"},
		{CustomerUUID: michaelNovotny, Amount: 32545, Status: models.InvoiceStatusPaid, Date: "2023-06-09"},
		{CustomerUUID: amyBurns, Amount: 1250, Status: models.InvoiceStatusPaid, Date: "2023-06-17"},
		{CustomerUUID: balazsOrban, Amount: 8546, Status: models.InvoiceStatusPaid, Date: "2023-06-07"},
		{CustomerUUID: delbaDeOliveira, Amount: 500, Status: models.InvoiceStatusPaid, Date: "2023-08-19"},
		{CustomerUUID: balazsOrban, Amount: 8945, Status: models.InvoiceStatusPaid, Date: "2023-06-03"},
		{CustomerUUID: leeRobinson, Amount: 1000, Status: models.InvoiceStatusPaid, Date: "2022-06-05"},
		{CustomerUUID: evilRabbit, Amount: 8000, Status: models.InvoiceStatusPaid, Date: "2022-11-25"},
		{CustomerUUID: amyBurns, Amount: 2500, Status: models.InvoiceStatusPending, Date: "2023-05-12"},
	},
	Revenue: []models.Revenue{
		{Month: "Jan", Revenue: 2000},
		{Month: "Feb", Revenue: 1800},
		{Month: "Mar", Revenue: 2200},
		{Month: "Apr", Revenue: 2500},
		{Month: "May", Revenue: 2300},
		{Month: "Jun", Revenue: 3200},
		{Month: "Jul", Revenue: 3500},
		{Month: "Aug", Revenue: 3700},
		{Month: "Sep", Revenue: 2500},
		{Month: "Oct", Revenue: 2800},
		{Month: "Nov", Revenue: 3000},
		{Month: "Dec", Revenue: 4800},
	},
}

package mail

type LeadAlertData struct {
	Name         string
	Phone        string
	Language     string
	Channel      string
	Identity     string
	RegisteredAt string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	SalesTo  string
}

package generate_document

// Request данные формы бронирования в том виде, в котором их прислал клиент
type Request struct {
	GuestName     string `json:"guestName" validate:"required"`
	Email         string `json:"email" validate:"required"`
	Company       string `json:"company" validate:"required"`
	ArrivalDate   string `json:"arrivalDate" validate:"required"`
	DepartureDate string `json:"departureDate" validate:"required"`
	Quantity      *int   `json:"quantity" validate:"omitempty,min=1,max=100"`
	RoomType      string `json:"roomType"`
	Remark        string `json:"remark"`
	Purpose       string `json:"purpose"`
}

// Response сводка по сгенерированному документу
type Response struct {
	ID          string
	FileName    string
	Company     string
	Email       string
	GuestName   string
	Nights      int
	TotalAmount int
	DownloadURL string
	ViewURL     string
}

package request

// CompanyRequest replaces the company info
type CompanyRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	CNPJ    string `json:"cnpj" binding:"max=18"`
	Address string `json:"address"`
	Phone   string `json:"phone" binding:"max=50"`
}

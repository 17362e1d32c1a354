package dashboard

import (
	"io"

	"seafresh-be/internal/order"

	"github.com/tealeg/xlsx"
)

const ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var exportHeaders = []string{
	"Order Number", "Order Date", "Customer", "Email", "City",
	"Product", "Seller", "Weight", "Quantity", "Unit Price", "Line Total",
	"Order Total", "Payment Method", "Payment Status", "Order Status",
}

// ExportOrders writes one sheet row per line item.
func ExportOrders(w io.Writer, orders []*order.AttributedOrder) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return err
	}

	header := sheet.AddRow()
	for _, h := range exportHeaders {
		header.AddCell().SetString(h)
	}

	for _, o := range orders {
		var customer, email, city string
		if o.Customer != nil {
			customer, email = o.Customer.Name, o.Customer.Email
		}
		if o.Address != nil {
			city = o.Address.City
		}

		for _, it := range o.Items {
			sellerName := ""
			if it.SellerInfo != nil {
				sellerName = it.SellerInfo.CompanyName
			}

			row := sheet.AddRow()
			row.AddCell().SetString(o.OrderNumber)
			row.AddCell().SetString(o.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetString(customer)
			row.AddCell().SetString(email)
			row.AddCell().SetString(city)
			row.AddCell().SetString(it.ProductName)
			row.AddCell().SetString(sellerName)
			row.AddCell().SetString(it.Weight)
			row.AddCell().SetInt(it.Quantity)
			row.AddCell().SetFloat(it.UnitPrice)
			row.AddCell().SetFloat(it.UnitPrice * float64(it.Quantity))
			row.AddCell().SetFloat(o.TotalAmount)
			row.AddCell().SetString(string(o.PaymentMethod))
			row.AddCell().SetString(string(o.PaymentStatus))
			row.AddCell().SetString(string(o.OrderStatus))
		}
	}

	return file.Write(w)
}

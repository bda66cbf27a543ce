package support

// Fixture data for an online clothing retailer. This is deliberately a
// handful of rows, not a database emulation: the wrappers exist to give the
// planner real actions to schedule and the tests real evidence strings.

type orderItem struct {
	Title       string
	Description string
	Quantity    int
	Price       float64
}

type order struct {
	Status            string // Processing, Shipped, Delivered
	OrderDate         string
	EstimatedDelivery string
	ActualDelivery    string
	TrackingNumber    string
	Items             []orderItem
	Total             float64
	ShippingAddress   string
	CustomerID        string
}

func sampleOrders() map[string]*order {
	return map[string]*order{
		"12345": {
			Status:            "Delivered",
			OrderDate:         "2026-08-21",
			EstimatedDelivery: "2026-08-28",
			ActualDelivery:    "2026-08-28",
			TrackingNumber:    "TRK123456789",
			Items: []orderItem{
				{Title: "Classic Cotton T-Shirt", Description: "100% organic cotton, navy blue, size M", Quantity: 2, Price: 29.99},
				{Title: "Slim Fit Jeans", Description: "Dark wash denim, size 32x32", Quantity: 1, Price: 79.99},
			},
			Total:           139.97,
			ShippingAddress: "123 Main St, Seattle, WA 98101",
			CustomerID:      "CUST001",
		},
		"12346": {
			Status:            "Shipped",
			OrderDate:         "2026-08-28",
			EstimatedDelivery: "2026-09-02",
			TrackingNumber:    "TRK987654321",
			Items: []orderItem{
				{Title: "Wool Blend Sweater", Description: "Merino wool blend, charcoal, size L", Quantity: 1, Price: 89.99},
			},
			Total:           89.99,
			ShippingAddress: "456 Oak Ave, Portland, OR 97201",
			CustomerID:      "CUST002",
		},
		"12347": {
			Status:            "Processing",
			OrderDate:         "2026-08-30",
			EstimatedDelivery: "2026-09-06",
			Items: []orderItem{
				{Title: "Summer Floral Dress", Description: "Lightweight cotton, red print, size S", Quantity: 1, Price: 59.99},
			},
			Total:           59.99,
			ShippingAddress: "789 Pine Rd, Denver, CO 80202",
			CustomerID:      "CUST001",
		},
	}
}

type customer struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	MemberSince string
	Tier        string
	OrdersCount int
	TotalSpent  float64
	Returns     int
}

func sampleCustomers() map[string]*customer {
	return map[string]*customer{
		"CUST001": {
			ID: "CUST001", Name: "John Doe", Email: "john.doe@example.com",
			Phone: "555-0123", MemberSince: "2024-03-12", Tier: "Gold",
			OrdersCount: 8, TotalSpent: 742.50, Returns: 1,
		},
		"CUST002": {
			ID: "CUST002", Name: "Maria Garcia", Email: "maria.garcia@example.com",
			Phone: "555-0456", MemberSince: "2025-11-02", Tier: "Silver",
			OrdersCount: 3, TotalSpent: 215.40, Returns: 0,
		},
	}
}

type faqEntry struct {
	Question string
	Answer   string
	Keywords []string
}

func sampleFAQs() []faqEntry {
	return []faqEntry{
		{
			Question: "What is your return policy?",
			Answer:   "Items can be returned within 30 days of delivery for a full refund, as long as they are unworn and have the original tags attached.",
			Keywords: []string{"return", "policy", "delivered"},
		},
		{
			Question: "When will I receive my refund?",
			Answer:   "Refunds are processed within 5-7 business days after we receive your returned item. The amount is credited to your original payment method.",
			Keywords: []string{"refund", "receive", "timeline", "money"},
		},
		{
			Question: "How long does shipping take?",
			Answer:   "Standard shipping takes 5-7 business days. Expedited shipping delivers the next business day for an additional $15.99.",
			Keywords: []string{"shipping", "take", "long", "delivery", "expedite"},
		},
		{
			Question: "Can I change my shipping address after placing an order?",
			Answer:   "Shipping addresses can be changed while the order is still processing. Once the order has shipped, the address can no longer be modified.",
			Keywords: []string{"change", "address", "shipping", "modify"},
		},
	}
}

type variant struct {
	Color string
	Size  string
	Price float64
	Stock int
}

type product struct {
	Title    string
	Variants []variant
}

func sampleInventory() []product {
	return []product{
		{
			Title: "Classic Cotton T-Shirt",
			Variants: []variant{
				{Color: "navy blue", Size: "M", Price: 29.99, Stock: 12},
				{Color: "blue", Size: "M", Price: 29.99, Stock: 3},
				{Color: "red", Size: "L", Price: 29.99, Stock: 0},
			},
		},
		{
			Title: "Slim Fit Jeans",
			Variants: []variant{
				{Color: "dark wash", Size: "32x32", Price: 79.99, Stock: 7},
				{Color: "light wash", Size: "34x32", Price: 79.99, Stock: 2},
			},
		},
	}
}

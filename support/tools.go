// Package support provides the customer-support tool set the ReWOO planner
// schedules against: thin wrappers over small in-memory fixtures for an
// online clothing retailer. Each tool returns a formatted human-readable
// string, which the worker stores verbatim as step evidence.
package support

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/supportflow/supportflow/tools"
)

// Desk holds the fixture data and the mutable records (refunds, shipping
// modifications, tickets) created during a session. One Desk per process;
// state is guarded because tools may be exercised from parallel tests.
type Desk struct {
	mu        sync.Mutex
	orders    map[string]*order
	customers map[string]*customer
	faqs      []faqEntry
	inventory []product

	refunds   []string // refund request IDs, in creation order
	shipMods  []string
	tickets   []string
	logger    *zap.Logger
}

// NewDesk creates a desk with the sample retailer data.
func NewDesk(logger *zap.Logger) *Desk {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Desk{
		orders:    sampleOrders(),
		customers: sampleCustomers(),
		faqs:      sampleFAQs(),
		inventory: sampleInventory(),
		logger:    logger,
	}
}

// Register adds every support tool to the registry.
func (d *Desk) Register(r *tools.Registry) {
	r.MustRegister(
		d.OrderStatus(),
		d.SearchFAQ(),
		d.CustomerAccount(),
		d.ProcessRefund(),
		d.ModifyShipping(),
		d.CheckInventory(),
		d.CreateTicket(),
	)
}

// OrderStatus looks up an order by ID.
func (d *Desk) OrderStatus() tools.Tool {
	return tools.Tool{
		Name:        "OrderStatus",
		Description: "Check the status of an order by order ID.",
		Params:      []tools.Param{{Name: "order_id", Type: tools.TypeString}},
		Fn: func(ctx context.Context, args tools.Args) (string, error) {
			orderID := args.String("order_id", "")
			d.mu.Lock()
			o, ok := d.orders[orderID]
			d.mu.Unlock()
			if !ok {
				return fmt.Sprintf("Order #%s not found. Please verify the order number and try again.", orderID), nil
			}

			var b strings.Builder
			fmt.Fprintf(&b, "Order #%s Details:\n\n", orderID)
			fmt.Fprintf(&b, "Status: %s\n", o.Status)
			fmt.Fprintf(&b, "Order Date: %s\n", o.OrderDate)
			fmt.Fprintf(&b, "Estimated Delivery: %s\n", o.EstimatedDelivery)
			if o.ActualDelivery != "" {
				fmt.Fprintf(&b, "Delivered On: %s\n", o.ActualDelivery)
			}
			if o.TrackingNumber != "" {
				fmt.Fprintf(&b, "Tracking Number: %s\n", o.TrackingNumber)
			}
			b.WriteString("\nItems Ordered:\n")
			for _, item := range o.Items {
				fmt.Fprintf(&b, "- %s: %s (Qty: %d, $%.2f)\n", item.Title, item.Description, item.Quantity, item.Price)
			}
			fmt.Fprintf(&b, "\nTotal: $%.2f\n", o.Total)
			fmt.Fprintf(&b, "Shipping Address: %s", o.ShippingAddress)
			return b.String(), nil
		},
	}
}

// SearchFAQ does keyword retrieval over the FAQ entries.
func (d *Desk) SearchFAQ() tools.Tool {
	return tools.Tool{
		Name:        "SearchFAQ",
		Description: "Search the FAQ knowledge base for answers.",
		Params:      []tools.Param{{Name: "query", Type: tools.TypeString}},
		Fn: func(ctx context.Context, args tools.Args) (string, error) {
			query := strings.ToLower(args.String("query", ""))
			words := strings.Fields(query)

			type hit struct {
				entry faqEntry
				score int
			}
			var best *hit
			for _, e := range d.faqs {
				score := 0
				for _, kw := range e.Keywords {
					for _, w := range words {
						if strings.Contains(w, kw) || strings.Contains(kw, w) {
							score++
						}
					}
				}
				if score > 0 && (best == nil || score > best.score) {
					best = &hit{entry: e, score: score}
				}
			}
			if best == nil {
				return fmt.Sprintf("No FAQ entries found for '%s'. A support agent can help with this question.", args.String("query", "")), nil
			}
			return fmt.Sprintf("Q: %s\nA: %s", best.entry.Question, best.entry.Answer), nil
		},
	}
}

// CustomerAccount looks up a customer profile by order ID, email, or
// customer ID.
func (d *Desk) CustomerAccount() tools.Tool {
	return tools.Tool{
		Name:        "CustomerAccount",
		Description: `Get customer account info (lookup_type: "order_id", "email", or "customer_id").`,
		Params: []tools.Param{
			{Name: "identifier", Type: tools.TypeString},
			{Name: "lookup_type", Type: tools.TypeString, Optional: true},
		},
		Fn: func(ctx context.Context, args tools.Args) (string, error) {
			identifier := args.String("identifier", "")
			lookupType := args.String("lookup_type", "order_id")

			d.mu.Lock()
			defer d.mu.Unlock()

			var c *customer
			switch lookupType {
			case "order_id":
				if o, ok := d.orders[identifier]; ok {
					c = d.customers[o.CustomerID]
				}
			case "email":
				for _, cand := range d.customers {
					if strings.EqualFold(cand.Email, identifier) {
						c = cand
						break
					}
				}
			case "customer_id":
				c = d.customers[identifier]
			}
			if c == nil {
				return fmt.Sprintf("Customer not found for %s: %s. Please verify the information and try again.", lookupType, identifier), nil
			}

			return fmt.Sprintf(`Customer Account: %s

Contact Information:
- Email: %s
- Phone: %s
- Member Since: %s
- Tier: %s

Account Summary:
- Total Orders: %d
- Total Spent: $%.2f
- Returns: %d`,
				c.Name, c.Email, c.Phone, c.MemberSince, c.Tier,
				c.OrdersCount, c.TotalSpent, c.Returns), nil
		},
	}
}

// ProcessRefund initiates a refund for an order. Amount is optional and
// defaults to the full order total.
func (d *Desk) ProcessRefund() tools.Tool {
	return tools.Tool{
		Name:        "ProcessRefund",
		Description: "Initiate refund (amount optional, defaults to full order amount).",
		Params: []tools.Param{
			{Name: "order_id", Type: tools.TypeString},
			{Name: "reason", Type: tools.TypeString},
			{Name: "amount", Type: tools.TypeFloat, Optional: true},
		},
		Fn: func(ctx context.Context, args tools.Args) (string, error) {
			orderID := args.String("order_id", "")

			d.mu.Lock()
			defer d.mu.Unlock()

			o, ok := d.orders[orderID]
			if !ok {
				return fmt.Sprintf("Order #%s not found. Cannot process refund for non-existent order.", orderID), nil
			}
			if o.Status == "Processing" {
				return fmt.Sprintf("Order #%s is still processing and has not been charged for shipping yet. You can cancel it instead of requesting a refund.", orderID), nil
			}

			amount := args.Float("amount", o.Total)
			refundID := "RF" + strings.ToUpper(uuid.NewString()[:6])
			d.refunds = append(d.refunds, refundID)
			d.logger.Info("refund created",
				zap.String("refund_id", refundID),
				zap.String("order_id", orderID))

			return fmt.Sprintf(`Refund Request #%s Created

Order #%s: $%.2f refund initiated
Reason: %s

Next Steps:
- You will receive a prepaid return label by email within 24 hours
- Refund is processed within 5-7 business days after we receive the item
- The amount is credited to your original payment method`,
				refundID, orderID, amount, args.String("reason", "Customer request")), nil
		},
	}
}

// ModifyShipping changes shipping for an order that has not been delivered.
func (d *Desk) ModifyShipping() tools.Tool {
	return tools.Tool{
		Name:        "ModifyShipping",
		Description: `Modify shipping (modification_type: "expedite", "address", "standard"; new_value: new address if changing address).`,
		Params: []tools.Param{
			{Name: "order_id", Type: tools.TypeString},
			{Name: "modification_type", Type: tools.TypeString},
			{Name: "new_value", Type: tools.TypeString, Optional: true},
		},
		Fn: func(ctx context.Context, args tools.Args) (string, error) {
			orderID := args.String("order_id", "")
			modType := args.String("modification_type", "")

			d.mu.Lock()
			defer d.mu.Unlock()

			o, ok := d.orders[orderID]
			if !ok {
				return fmt.Sprintf("Order #%s not found. Cannot modify shipping for non-existent order.", orderID), nil
			}
			if o.Status == "Delivered" {
				return fmt.Sprintf("Order #%s has already been delivered. Cannot modify shipping for delivered orders.", orderID), nil
			}

			modID := "SM" + strings.ToUpper(uuid.NewString()[:6])
			switch modType {
			case "expedite":
				d.shipMods = append(d.shipMods, modID)
				return fmt.Sprintf(`Shipping Expedited Successfully!

- Modification ID: %s
- Order: #%s
- Change: Expedited to overnight delivery
- Additional Cost: $15.99

Additional charges will appear on your original payment method.`, modID, orderID), nil
			case "address":
				newAddr := args.String("new_value", "")
				if newAddr == "" {
					return "Address change requires a new address. Please provide the new shipping address.", nil
				}
				o.ShippingAddress = newAddr
				d.shipMods = append(d.shipMods, modID)
				return fmt.Sprintf(`Shipping Address Updated Successfully!

- Modification ID: %s
- Order: #%s
- New Address: %s`, modID, orderID, newAddr), nil
			case "standard":
				d.shipMods = append(d.shipMods, modID)
				return fmt.Sprintf("Order #%s switched to standard shipping (5-7 business days). Modification ID: %s", orderID, modID), nil
			default:
				return fmt.Sprintf("Unknown modification type '%s'. Supported types: expedite, address, standard.", modType), nil
			}
		},
	}
}

// CheckInventory checks product availability with optional color and size
// filters.
func (d *Desk) CheckInventory() tools.Tool {
	return tools.Tool{
		Name:        "CheckInventory",
		Description: "Check product availability (color and size optional).",
		Params: []tools.Param{
			{Name: "product_name", Type: tools.TypeString},
			{Name: "color", Type: tools.TypeString, Optional: true},
			{Name: "size", Type: tools.TypeString, Optional: true},
		},
		Fn: func(ctx context.Context, args tools.Args) (string, error) {
			name := strings.ToLower(args.String("product_name", ""))
			color := strings.ToLower(args.String("color", ""))
			size := strings.ToLower(args.String("size", ""))

			var b strings.Builder
			found := false
			for _, p := range d.inventory {
				if !strings.Contains(strings.ToLower(p.Title), name) {
					continue
				}
				found = true
				fmt.Fprintf(&b, "%s:\n", p.Title)
				matched := 0
				for _, v := range p.Variants {
					if color != "" && !strings.Contains(strings.ToLower(v.Color), color) {
						continue
					}
					if size != "" && !strings.EqualFold(v.Size, size) {
						continue
					}
					matched++
					stock := "In Stock"
					switch {
					case v.Stock == 0:
						stock = "Out of Stock"
					case v.Stock <= 5:
						stock = fmt.Sprintf("Low Stock (%d left)", v.Stock)
					}
					fmt.Fprintf(&b, "- %s, Size %s: $%.2f - %s\n", v.Color, v.Size, v.Price, stock)
				}
				if matched == 0 {
					fmt.Fprintf(&b, "- Not available in requested color/size (%s/%s)\n", orAny(color), orAny(size))
				}
			}
			if !found {
				return fmt.Sprintf("No products found matching '%s'. Please try a different product name.", args.String("product_name", "")), nil
			}
			return "Product Availability Check:\n\n" + strings.TrimRight(b.String(), "\n"), nil
		},
	}
}

func orAny(s string) string {
	if s == "" {
		return "any"
	}
	return s
}

// CreateTicket opens a support ticket for human follow-up.
func (d *Desk) CreateTicket() tools.Tool {
	return tools.Tool{
		Name:        "CreateTicket",
		Description: `Create support ticket (priority: "low"/"medium"/"high"/"urgent", category: "billing"/"shipping"/"product"/"technical"/"complaint").`,
		Params: []tools.Param{
			{Name: "customer_info", Type: tools.TypeString},
			{Name: "issue_summary", Type: tools.TypeString},
			{Name: "priority", Type: tools.TypeString},
			{Name: "category", Type: tools.TypeString},
		},
		Fn: func(ctx context.Context, args tools.Args) (string, error) {
			priority := args.String("priority", "medium")
			category := args.String("category", "technical")

			d.mu.Lock()
			ticketID := "TK" + strings.ToUpper(uuid.NewString()[:6])
			d.tickets = append(d.tickets, ticketID)
			d.mu.Unlock()

			d.logger.Info("ticket created",
				zap.String("ticket_id", ticketID),
				zap.String("priority", priority),
				zap.String("category", category))

			return fmt.Sprintf(`Support Ticket #%s Created

Customer: %s
Issue: %s
Priority: %s
Category: %s

A support specialist will follow up within one business day.`,
				ticketID,
				args.String("customer_info", "unknown"),
				args.String("issue_summary", ""),
				priority, category), nil
		},
	}
}

// RefundRequests returns the refund IDs created so far, for inspection.
func (d *Desk) RefundRequests() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.refunds...)
}

// Tickets returns the ticket IDs created so far, for inspection.
func (d *Desk) Tickets() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.tickets...)
}

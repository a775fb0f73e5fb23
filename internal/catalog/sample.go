package catalog

import "faqdesk/internal/domain"

// SampleSource names the built-in catalog
const SampleSource = "built-in"

// Sample returns the built-in help-center catalog used when no catalog
// path is configured
func Sample() domain.Catalog {
	return domain.Catalog{
		Source: SampleSource,
		Entries: []domain.FAQ{
			{ID: 1, Category: "Repairs", Question: "How long does a hem alteration take?",
				Answer: "Standard hemming is ready in 3 working days. Express service is available for next-day pickup.",
				Tags:   []string{"hem", "alterations", "turnaround"}, Helpful: 42, NotHelpful: 3},
			{ID: 2, Category: "Repairs", Question: "Can you replace a broken zipper?",
				Answer: "Yes. We replace zippers on trousers, skirts, dresses and jackets. Bring the garment in for a quote.",
				Tags:   []string{"zipper", "repair"}, Helpful: 31, NotHelpful: 1},
			{ID: 3, Category: "Repairs", Question: "Do you repair leather jackets?",
				Answer: "Leather repairs are handled by our specialist on Tuesdays and Thursdays.",
				Tags:   []string{"leather", "jacket", "repair"}, Helpful: 12},
			{ID: 4, Category: "Fabrics", Question: "Which fabrics can I choose for a custom suit?",
				Answer: "Wool, linen, cotton twill and wool-silk blends are stocked. Swatches are available in store.",
				Tags:   []string{"suit", "wool", "linen", "custom"}, Helpful: 27, NotHelpful: 2},
			{ID: 5, Category: "Fabrics", Question: "Can I bring my own fabric?",
				Answer: "Yes, customer-supplied fabric is accepted. We check the fabric for shrinkage before cutting.",
				Tags:   []string{"fabric", "custom"}, Helpful: 18},
			{ID: 6, Category: "Appointments", Question: "How do I book a fitting appointment?",
				Answer: "Book from the Appointments tab or call the shop. Fittings last about 30 minutes.",
				Tags:   []string{"fitting", "booking", "appointment"}, Helpful: 55, NotHelpful: 4},
			{ID: 7, Category: "Appointments", Question: "Can I reschedule my appointment?",
				Answer: "Appointments can be moved up to 24 hours before the start time at no charge.",
				Tags:   []string{"reschedule", "appointment"}, Helpful: 20, NotHelpful: 1},
			{ID: 8, Category: "Orders", Question: "Return policy?",
				Answer: "Unaltered ready-made items can be returned within 30 days with a receipt.",
				Tags:   []string{"returns", "refund"}, Helpful: 50},
			{ID: 9, Category: "Orders", Question: "Refund status",
				Answer: "Refunds are issued to the original payment method within 5 to 7 business days. Check email for confirmation.",
				Tags:   []string{"refund", "payment"}, Helpful: 9, NotHelpful: 2},
			{ID: 10, Category: "Orders", Question: "What happens to items left in my cart?",
				Answer: "Cart items are kept for 14 days. Repair quotes in the cart expire after 7 days.",
				Tags:   []string{"cart"}, Helpful: 4},
			{ID: 11, Category: "Account", Question: "How do I turn off notifications?",
				Answer: "Open Settings, then Notifications, and toggle the channels you do not want.",
				Tags:   []string{"notifications", "settings"}, Helpful: 7},
			{ID: 12, Category: "Account", Question: "Is my measurement profile saved?",
				Answer: "Your measurements are stored with your account and reused for future orders.",
				Tags:   []string{"measurements", "profile"}, Helpful: 15, NotHelpful: 1},
		},
	}
}

package schema

// ExampleQuery is one entry in the canned catalog surfaced by the playground.
type ExampleQuery struct {
	Name  string `json:"name"`
	Query string `json:"query"`
}

// ExampleQueries returns the catalog in display order. Callers receive a
// fresh slice; the backing entries are immutable.
func ExampleQueries() []ExampleQuery {
	out := make([]ExampleQuery, len(exampleQueries))
	copy(out, exampleQueries)
	return out
}

var exampleQueries = []ExampleQuery{
	{
		Name:  "All Users",
		Query: "SELECT *\nFROM Users",
	},
	{
		Name:  "All Products",
		Query: "SELECT *\nFROM Products",
	},
	{
		Name:  "User Count",
		Query: "SELECT COUNT(*) AS total_users\nFROM Users",
	},
	{
		Name:  "Top 5 Expensive Products",
		Query: "SELECT name, price\nFROM Products\nORDER BY price DESC\nLIMIT 5",
	},
	{
		Name:  "Recent Orders",
		Query: "SELECT o.order_id, u.username, o.order_date, o.total_amount\nFROM Orders o\nJOIN Users u ON o.user_id = u.id\nORDER BY o.order_date DESC",
	},
	{
		Name: "Product Categories with Products",
		Query: "SELECT\n  c.name AS category_name,\n  COUNT(DISTINCT p.product_id) AS product_count,\n  STRING_AGG(DISTINCT p.name, ', ') AS products\n" +
			"FROM Categories c\nLEFT JOIN Products p ON c.category_id = p.category_id\nGROUP BY c.name\nORDER BY product_count DESC, c.name",
	},
	{
		Name: "Users with Most Orders",
		Query: "SELECT u.username, COUNT(o.order_id) AS order_count\nFROM Users u\nLEFT JOIN Orders o ON u.id = o.user_id\n" +
			"GROUP BY u.id, u.username\nORDER BY order_count DESC\nLIMIT 5",
	},
	{
		Name:  "Average Order Value",
		Query: "SELECT AVG(total_amount) AS avg_order_value\nFROM Orders",
	},
	{
		Name: "Products with Low Inventory",
		Query: "SELECT p.name, i.quantity\nFROM Products p\nJOIN Inventory i ON p.product_id = i.product_id\n" +
			"WHERE i.quantity < 10\nORDER BY i.quantity ASC",
	},
	{
		Name: "Top Rated Products",
		Query: "SELECT p.name, COALESCE(AVG(r.rating), 0) AS avg_rating, COUNT(r.review_id) AS review_count\n" +
			"FROM Products p\nLEFT JOIN Reviews r ON p.product_id = r.product_id\nGROUP BY p.product_id, p.name\n" +
			"HAVING COUNT(r.review_id) > 5\nORDER BY avg_rating DESC\nLIMIT 10",
	},
	{
		Name: "Monthly Sales",
		Query: "SELECT DATE_TRUNC('month', order_date) AS month, SUM(total_amount) AS total_sales\n" +
			"FROM Orders\nGROUP BY DATE_TRUNC('month', order_date)\nORDER BY month DESC\nLIMIT 12",
	},
	{
		Name: "Users with Abandoned Carts",
		Query: "SELECT u.username, COUNT(c.cart_id) AS items_in_cart\nFROM Users u\nJOIN Carts c ON u.id = c.user_id\n" +
			"LEFT JOIN Orders o ON u.id = o.user_id\nWHERE o.order_id IS NULL\nGROUP BY u.id, u.username\n" +
			"HAVING COUNT(c.cart_id) > 0\nORDER BY items_in_cart DESC",
	},
	{
		Name: "Product Sales Ranking",
		Query: "SELECT p.name, SUM(oi.quantity) AS total_sold\nFROM Products p\nJOIN OrderItems oi ON p.product_id = oi.product_id\n" +
			"GROUP BY p.product_id, p.name\nORDER BY total_sold DESC\nLIMIT 10",
	},
	{
		Name: "Users with Highest Total Spend",
		Query: "SELECT u.username, SUM(o.total_amount) AS total_spend\nFROM Users u\nJOIN Orders o ON u.id = o.user_id\n" +
			"GROUP BY u.id, u.username\nORDER BY total_spend DESC",
	},
	{
		Name: "Products Never Ordered",
		Query: "SELECT DISTINCT p.name\nFROM Products p\nLEFT JOIN OrderItems oi ON p.product_id = oi.product_id\n" +
			"WHERE oi.order_item_id IS NULL",
	},
	{
		Name: "Category Sales Performance",
		Query: "SELECT c.name AS category, SUM(oi.quantity * oi.price) AS total_sales\nFROM Categories c\n" +
			"JOIN Products p ON c.category_id = p.category_id\nJOIN OrderItems oi ON p.product_id = oi.product_id\n" +
			"GROUP BY c.category_id, c.name\nORDER BY total_sales DESC",
	},
	{
		Name: "User Registration Trend",
		Query: "SELECT DATE_TRUNC('month', created_at) AS month, COUNT(*) AS new_users\nFROM Users\n" +
			"GROUP BY DATE_TRUNC('month', created_at)\nORDER BY month DESC\nLIMIT 12",
	},
	{
		Name: "Orders with Payment Issues",
		Query: "SELECT o.order_id, u.username, o.total_amount, p.payment_status\nFROM Orders o\n" +
			"JOIN Users u ON o.user_id = u.id\nJOIN Payments p ON o.order_id = p.order_id\n" +
			"WHERE p.payment_status != 'Completed'\nORDER BY o.order_date DESC",
	},
	{
		Name: "Customer Lifetime Value",
		Query: "WITH customer_orders AS (\n  SELECT user_id, SUM(total_amount) AS total_spend,\n" +
			"         MIN(order_date) AS first_order_date,\n         MAX(order_date) AS last_order_date,\n" +
			"         COUNT(*) AS order_count\n  FROM Orders\n  GROUP BY user_id\n)\n" +
			"SELECT u.username,\n       co.total_spend,\n       co.order_count,\n" +
			"       co.total_spend / NULLIF(EXTRACT(YEAR FROM AGE(co.last_order_date, co.first_order_date)), 0) AS yearly_value\n" +
			"FROM Users u\nJOIN customer_orders co ON u.id = co.user_id\nORDER BY yearly_value DESC",
	},
}

// Package schema holds the textual description of the sandbox database that
// grounds every model prompt. The descriptor is a single shared constant so
// the generate and chat call sites can never drift apart; it is prompt
// grounding only and is never validated against the live schema.
package schema

import "fmt"

// Descriptor enumerates the seeded e-commerce tables and their columns.
// It must stay textually consistent with the deployed schema.
const Descriptor = `
Users (id, username, email, password_hash, first_name, last_name, address, phone_number, created_at)
Categories (id, category_id, name, description)
Products (id, product_id, name, description, price, category_id, image_url, created_at)
Orders (order_id, user_id, order_date, total_amount, status)
OrderItems (order_item_id, order_id, product_id, quantity, price)
Reviews (review_id, user_id, product_id, rating, review_text, created_at)
Carts (cart_id, user_id, product_id, quantity)
Payments (payment_id, order_id, payment_date, payment_amount, payment_status)
Inventory (inventory_id, product_id, quantity)
`

// GeneratePrompt is the system instruction for the single-turn
// question-to-SQL path. The model is told to answer with bare SQL; no
// extraction delimiters are used on this path.
func GeneratePrompt() string {
	return fmt.Sprintf(
		"You are a helpful assistant that generates SQL queries based on user questions. Use the following schema:\n%s\nOnly respond with the SQL query, no other text or code formatting.",
		Descriptor,
	)
}

// ChatPrompt is the system instruction for the conversational path. It
// establishes the [SQL]...[/SQL] delimiter convention: a soft contract
// enforced only by instruction, which the extractor must tolerate the model
// omitting or malforming.
func ChatPrompt() string {
	return fmt.Sprintf(
		"You are a helpful assistant that can query a database and provide insights in a friendly tone. Use the following schema:\n%s\nIf you need to query the database, use the format: [SQL]your query here[/SQL]. I will execute the query and provide the results with detailed explanations.",
		Descriptor,
	)
}

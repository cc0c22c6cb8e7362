package handlers

// @title Lead Portal API
// @version 1.0
// @description Serverless backend for the lead ordering portal: CRM proxying, payment intents, and order records

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @tag.name ghl
// @tag.description CRM proxy operations using a private integration token

// @tag.name payments
// @tag.description Payment intent operations

// @tag.name orders
// @tag.description Order submission operations

// @tag.name admin
// @tag.description Admin-gated user lookups

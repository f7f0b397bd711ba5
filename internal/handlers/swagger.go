package handlers

// @title Quotes API
// @version 1.0
// @description CRUD access to a single table of Star Trek quotes

// @contact.name API Support
// @contact.url https://github.com/your-org/quotes-api

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /api/v1

// @tag.name quotes
// @tag.description Quote management operations

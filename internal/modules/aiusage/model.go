// README: Monthly per-user allowance for AI question generation.
package aiusage

import "errors"

// ErrInsufficientTokens is returned when a user has no tokens remaining for the current month.
var ErrInsufficientTokens = errors.New("insufficient tokens")

// DefaultTokens is the number of generation requests granted per month.
const DefaultTokens = 20

// Schema creates the ai_usage table. Applied by Store.EnsureSchema at startup.
const Schema = `
CREATE TABLE IF NOT EXISTS ai_usage (
	uid              TEXT PRIMARY KEY,
	tokens_remaining INT  NOT NULL DEFAULT 20,
	last_reset_month TEXT NOT NULL DEFAULT to_char(now(), 'YYYY-MM')
)`

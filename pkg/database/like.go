package database

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern lowercases term and wraps it for a case-insensitive
// substring LIKE. Wildcards in term match literally when the query
// declares ESCAPE '\'.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(term))) + "%"
}

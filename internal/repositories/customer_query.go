package repositories

import (
	"errors"
	"fmt"
	"strings"

	"micron-manager/internal/models"
)

var (
	ErrUnsupportedPredicate = errors.New("unsupported predicate")
	ErrUnknownColumn        = errors.New("unknown users column")
	ErrUnknownOrder         = errors.New("unknown sort order")
)

// searchableColumns are the users columns a filter may reference
var searchableColumns = map[string]bool{
	"user_email":    true,
	"user_login":    true,
	"user_nicename": true,
	"display_name":  true,
}

var orderColumns = map[string]string{
	models.OrderByID:         "users.id",
	models.OrderByInclude:    "users.id",
	models.OrderByName:       "users.display_name",
	models.OrderByRegistered: "users.user_registered",
	models.OrderByEmail:      "users.user_email",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern matches term literally as a substring
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// compilePredicate turns a predicate tree into a parameterised SQL condition
// over the users table.
func compilePredicate(p models.Predicate) (string, []interface{}, error) {
	switch node := p.(type) {
	case models.And:
		return compileGroup([]models.Predicate(node), " AND ", "1 = 1")
	case models.Or:
		return compileGroup([]models.Predicate(node), " OR ", "1 = 0")
	case models.ColumnContains:
		if len(node.Columns) == 0 {
			return "1 = 0", nil, nil
		}
		parts := make([]string, 0, len(node.Columns))
		args := make([]interface{}, 0, len(node.Columns))
		for _, column := range node.Columns {
			if !searchableColumns[column] {
				return "", nil, fmt.Errorf("%w: %s", ErrUnknownColumn, column)
			}
			parts = append(parts, fmt.Sprintf(`LOWER(users.%s) LIKE LOWER(?) ESCAPE '\'`, column))
			args = append(args, containsPattern(node.Term))
		}
		return "(" + strings.Join(parts, " OR ") + ")", args, nil
	case models.ColumnEquals:
		if !searchableColumns[node.Column] {
			return "", nil, fmt.Errorf("%w: %s", ErrUnknownColumn, node.Column)
		}
		return fmt.Sprintf("LOWER(users.%s) = LOWER(?)", node.Column), []interface{}{node.Value}, nil
	case models.AttributeContains:
		return `EXISTS (SELECT 1 FROM usermeta um WHERE um.user_id = users.id AND um.meta_key = ? AND LOWER(um.meta_value) LIKE LOWER(?) ESCAPE '\')`,
			[]interface{}{node.Key, containsPattern(node.Term)}, nil
	case models.RoleIn:
		if len(node.Roles) == 0 {
			return "1 = 0", nil, nil
		}
		return "EXISTS (SELECT 1 FROM user_roles ur WHERE ur.user_id = users.id AND ur.role IN ?)",
			[]interface{}{node.Roles}, nil
	case nil:
		return "1 = 1", nil, nil
	default:
		return "", nil, fmt.Errorf("%w: %T", ErrUnsupportedPredicate, p)
	}
}

func compileGroup(children []models.Predicate, sep, empty string) (string, []interface{}, error) {
	if len(children) == 0 {
		return empty, nil, nil
	}

	parts := make([]string, 0, len(children))
	var args []interface{}
	for _, child := range children {
		sql, childArgs, err := compilePredicate(child)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, sql)
		args = append(args, childArgs...)
	}

	return "(" + strings.Join(parts, sep) + ")", args, nil
}

// orderClause maps the plan ordering to an ORDER BY clause with an id tiebreak
func orderClause(orderBy, order string) (string, error) {
	column, ok := orderColumns[orderBy]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownOrder, orderBy)
	}

	direction := strings.ToUpper(order)
	if direction != "ASC" && direction != "DESC" {
		return "", fmt.Errorf("%w: %s", ErrUnknownOrder, order)
	}

	if column == "users.id" {
		return fmt.Sprintf("%s %s", column, direction), nil
	}
	return fmt.Sprintf("%s %s, users.id %s", column, direction, direction), nil
}

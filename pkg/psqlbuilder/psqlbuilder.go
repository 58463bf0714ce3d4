package psqlbuilder

import "github.com/Masterminds/squirrel"

// psql построитель запросов с плейсхолдерами PostgreSQL ($1, $2, ...)
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func Select(columns ...string) squirrel.SelectBuilder {
	return psql.Select(columns...)
}

func Insert(into string) squirrel.InsertBuilder {
	return psql.Insert(into)
}

func Delete(from string) squirrel.DeleteBuilder {
	return psql.Delete(from)
}

// Package repository contém as implementações dos repositórios de leitura das tabelas do ERP
package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/annual-summary-api/internal/domain"
)

// ErrTableNotFound indica que a tabela de um módulo opcional não está instalada
var ErrTableNotFound = errors.New("tabela não encontrada")

// documentAlias é o alias usado para a tabela principal em todas as consultas de documentos
const documentAlias = "d"

// tableRef monta a referência "tabela alias" com o nome físico entre aspas
func tableRef(doc domain.DocType, alias string) string {
	return fmt.Sprintf("%s %s", pq.QuoteIdentifier(doc.Table()), alias)
}

func qualify(alias, column string) string {
	return alias + "." + column
}

// compileCondition traduz uma condição tipada para SQL parametrizado
func compileCondition(alias string, condition domain.Condition) (squirrel.Sqlizer, error) {
	switch c := condition.(type) {
	case domain.Equals:
		return squirrel.Eq{qualify(alias, c.Column): c.Value}, nil
	case domain.In:
		if len(c.Values) == 0 {
			return nil, errors.Errorf("lista vazia para a coluna %s", c.Column)
		}
		return squirrel.Eq{qualify(alias, c.Column): c.Values}, nil
	case domain.Between:
		return squirrel.Expr(qualify(alias, c.Column)+" BETWEEN ? AND ?", c.From, c.To), nil
	case domain.GreaterThan:
		return squirrel.Gt{qualify(alias, c.Column): c.Value}, nil
	case domain.AtMost:
		return squirrel.LtOrEq{qualify(alias, c.Column): c.Value}, nil
	case domain.LessThan:
		return squirrel.Lt{qualify(alias, c.Column): c.Value}, nil
	case domain.HasItemIn:
		if len(c.Values) == 0 {
			return nil, errors.Errorf("lista vazia para a coluna %s dos itens", c.Column)
		}
		subquery, args, err := squirrel.
			Select("1").
			From(pq.QuoteIdentifier("tab"+c.ItemTable) + " i").
			Where("i.parent = " + qualify(alias, "name")).
			Where(squirrel.Eq{qualify("i", c.Column): c.Values}).
			ToSql()
		if err != nil {
			return nil, errors.Wrap(err, "erro ao construir subconsulta de itens")
		}
		return squirrel.Expr("EXISTS ("+subquery+")", args...), nil
	default:
		return nil, errors.Errorf("condição não suportada: %T", condition)
	}
}

// applyConditions adiciona todas as condições ao WHERE da consulta (AND entre elas)
func applyConditions(builder squirrel.SelectBuilder, alias string, conditions []domain.Condition) (squirrel.SelectBuilder, error) {
	for _, condition := range conditions {
		if condition == nil {
			continue
		}

		sqlizer, err := compileCondition(alias, condition)
		if err != nil {
			return builder, err
		}
		builder = builder.Where(sqlizer)
	}

	return builder, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-envios/models"
)

var shipmentsTable = models.Shipment{}.TableName()

const (
	columnID        = "id"
	columnRecipient = "recipient"
	columnAddress   = "address"
	columnStatus    = "status"
)

var shipmentColumns = []string{columnID, columnRecipient, columnAddress, columnStatus}

func returningShipment() string {
	return fmt.Sprintf("RETURNING %s, %s, %s, %s", columnID, columnRecipient, columnAddress, columnStatus)
}

func buildListShipmentsQuery(sb sq.StatementBuilderType) (string, []any, error) {
	return sb.Select(shipmentColumns...).
		From(shipmentsTable).
		ToSql()
}

func buildFindShipmentQuery(sb sq.StatementBuilderType, id string) (string, []any, error) {
	return sb.Select(shipmentColumns...).
		From(shipmentsTable).
		Where(sq.Eq{columnID: id}).
		ToSql()
}

func buildCreateShipmentQuery(sb sq.StatementBuilderType, s models.Shipment) (string, []any, error) {
	return sb.Insert(shipmentsTable).
		Columns(shipmentColumns...).
		Values(s.ID, s.Recipient, s.Address, s.Status).
		Suffix(returningShipment()).
		ToSql()
}

// buildUpdateShipmentQuery sets only the fields present in update.
// Callers must check update.HasChanges first: squirrel refuses an UPDATE
// without SET clauses.
func buildUpdateShipmentQuery(sb sq.StatementBuilderType, update models.ShipmentUpdate) (string, []any, error) {
	query := sb.Update(shipmentsTable)

	if update.Recipient.Set {
		query = query.Set(columnRecipient, update.Recipient.Value)
	}
	if update.Address.Set {
		query = query.Set(columnAddress, update.Address.Value)
	}
	if update.Status.Set {
		query = query.Set(columnStatus, update.Status.Value)
	}

	return query.
		Where(sq.Eq{columnID: update.ID}).
		Suffix(returningShipment()).
		ToSql()
}

func buildDeleteShipmentQuery(sb sq.StatementBuilderType, id string) (string, []any, error) {
	return sb.Delete(shipmentsTable).
		Where(sq.Eq{columnID: id}).
		ToSql()
}

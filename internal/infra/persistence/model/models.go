// Package model holds the GORM persistence models. They never leave the infra layer;
// repositories map them to domain entities.
package model

// AllModels returns every model managed by schema migration, in dependency order.
func AllModels() []any {
	return []any{
		&UserModel{},
		&ProfileModel{},
		&QRCodeModel{},
		&OrderModel{},
		&AnalyticsEventModel{},
	}
}

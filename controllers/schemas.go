package controllers

import (
	"itemstore/config"
	"itemstore/models"
)

// CreateItemParams is bound from the query string or a form body. Pointers
// tell a missing parameter apart from an empty one.
type CreateItemParams struct {
	ID          *int    `form:"id" binding:"required"`
	Name        *string `form:"name" binding:"required"`
	Description *string `form:"description"`
	Precio      *string `form:"precio"`
}

func (params CreateItemParams) Field(field string) *string {
	if field == config.FieldPrecio {
		return params.Precio
	}
	return params.Description
}

type ListItemsParams struct {
	Skip  int `form:"skip,default=0"`
	Limit int `form:"limit,default=10"`
}

type ItemUri struct {
	ItemID int `uri:"item_id"`
}

type DescriptionItemSchema struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PrecioItemSchema struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Precio string `json:"precio"`
}

func NewItemSchema(item models.Item, field string) interface{} {
	value := item.Field(field)
	if field == config.FieldPrecio {
		return PrecioItemSchema{ID: item.ID, Name: item.Name, Precio: value}
	}
	return DescriptionItemSchema{ID: item.ID, Name: item.Name, Description: value}
}

type DetailResponse struct {
	Detail string `json:"detail"`
}

const (
	ItemNotFound         = "Item not found"
	ItemNotFoundOnDelete = "Item no encontrado, fallo al remover"
	ItemDeleted          = "Item eliminado correctamente"
	InternalServerError  = "Internal Server Error"
)

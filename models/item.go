package models

import (
	"errors"
	"itemstore/config"

	"gorm.io/gorm"
)

var ErrItemNotFound = errors.New("item not found")

// Item carries both free-text columns so either schema variant can run on the
// same table; config.Cfg.Item.Field picks the one in use.
type Item struct {
	ID          int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name        string `gorm:"index" json:"name"`
	Description string `gorm:"index" json:"description"`
	Precio      string `gorm:"index" json:"precio"`
}

func (Item) TableName() string {
	return "items"
}

func (item Item) Field(field string) string {
	if field == config.FieldPrecio {
		return item.Precio
	}
	return item.Description
}

func (item *Item) SetField(field, value string) {
	if field == config.FieldPrecio {
		item.Precio = value
		return
	}
	item.Description = value
}

func (item *Item) CreateItem(db *gorm.DB) error {
	if res := db.Create(item); res.Error != nil {
		return res.Error
	}
	return nil
}

func GetItemByID(db *gorm.DB, id int) (Item, error) {
	var item Item
	if res := db.Where("id = ?", id).Take(&item); res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return Item{}, ErrItemNotFound
		}
		return Item{}, res.Error
	}
	return item, nil
}

// ListItems returns a page in storage order, projected to id, name and field.
func ListItems(db *gorm.DB, field string, skip, limit int) ([]Item, error) {
	items := make([]Item, 0)
	res := db.Select("id", "name", field).Offset(skip).Limit(limit).Find(&items)
	if res.Error != nil {
		return nil, res.Error
	}
	return items, nil
}

func (item *Item) DeleteItem(db *gorm.DB) error {
	if res := db.Delete(item); res.Error != nil {
		return res.Error
	}
	return nil
}

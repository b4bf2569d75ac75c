package repository

import (
	"veres-tariff/internal/app/ds"
	"veres-tariff/internal/app/role"
)

// Методы для пользователей (ORM)

func (r *Repository) GetUserByID(id uint) (*ds.User, error) {
	var user ds.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetUserByUsername(username string) (*ds.User, error) {
	var user ds.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) CreateUser(user *ds.User) error {
	return r.db.Create(user).Error
}

func (r *Repository) UpdateUser(user *ds.User) error {
	return r.db.Save(user).Error
}

func (r *Repository) DeleteUser(id uint) error {
	return r.db.Delete(&ds.User{}, id).Error
}

// ListUsers возвращает пользователей, опционально фильтруя по роли
func (r *Repository) ListUsers(roleFilter role.Role) ([]ds.User, error) {
	var users []ds.User
	query := r.db.Order("id")
	if roleFilter != "" {
		query = query.Where("role = ?", roleFilter)
	}
	err := query.Find(&users).Error
	return users, err
}

// CountAdmins нужен для защиты от удаления последнего администратора
func (r *Repository) CountAdmins() (int64, error) {
	var count int64
	err := r.db.Model(&ds.User{}).Where("role = ? AND is_active = ?", role.Admin, true).Count(&count).Error
	return count, err
}

package role

// Role - роль пользователя в системе
type Role string

const (
	Admin     Role = "admin"     // администратор
	Employee  Role = "employee"  // сотрудник
	Forwarder Role = "forwarder" // экспедитор
	Client    Role = "client"    // клиент
)

// All - закрытый перечень ролей
var All = []Role{Admin, Employee, Forwarder, Client}

// IsValid проверяет, что строка является известной ролью
func IsValid(r Role) bool {
	switch r {
	case Admin, Employee, Forwarder, Client:
		return true
	}
	return false
}

// Permission - операция, требующая проверки роли
type Permission int

const (
	ManageUsers              Permission = iota // CRUD всех пользователей
	ManageForwardersClients                    // CRUD экспедиторов и клиентов
	SetMarkups                                 // наценки и скидки
	ViewArchive                                // архив тарифов
	ViewRequestHistory                         // история запросов и КП
	AddTariffs                                 // создание/изменение тарифов
	CalculateQuotes                            // расчёт стоимости
	GenerateOffers                             // генерация и скачивание КП
)

// permissions - исчерпывающее отображение роль -> разрешённые операции.
// Правка здесь меняет доступ во всех маршрутах сразу.
var permissions = map[Permission][]Role{
	ManageUsers:             {Admin},
	ManageForwardersClients: {Admin, Employee},
	SetMarkups:              {Admin, Employee},
	ViewArchive:             {Admin, Employee},
	ViewRequestHistory:      {Admin, Employee},
	AddTariffs:              {Admin, Employee, Forwarder},
	CalculateQuotes:         {Admin, Employee, Forwarder, Client},
	GenerateOffers:          {Admin, Employee, Forwarder, Client},
}

// Can проверяет, разрешена ли операция для роли
func Can(r Role, p Permission) bool {
	for _, allowed := range permissions[p] {
		if allowed == r {
			return true
		}
	}
	return false
}

// Allowed возвращает список ролей, которым разрешена операция
func Allowed(p Permission) []Role {
	return permissions[p]
}

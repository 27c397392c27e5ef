package seeders

type cityData struct {
	ID   int64
	Name string
}

type companyData struct {
	ID   int64
	Name string
}

type objectData struct {
	ID        int64
	CompanyID int64
	CityID    int64
	Name      string
	Address   string
}

type checkTypeData struct {
	ID        int64
	CompanyID int64
	Name      string
}

type templateData struct {
	ID          int64
	CompanyID   int64
	CheckTypeID int64
	Name        string
}

type inspectorData struct {
	ID        int64
	CompanyID int64
	FirstName string
	LastName  string
	Email     string
	Status    string
}

var citiesData = []cityData{
	{ID: 1, Name: "Москва"},
	{ID: 2, Name: "Санкт-Петербург"},
}

var companiesData = []companyData{
	{ID: 1, Name: "Демо-компания"},
	{ID: 2, Name: "Чужая компания"},
}

var objectsData = []objectData{
	{ID: 1, CompanyID: 1, CityID: 1, Name: "Склад на Варшавке", Address: "Варшавское ш., 1"},
	{ID: 2, CompanyID: 1, CityID: 2, Name: "Магазин на Невском", Address: "Невский пр., 10"},
	{ID: 3, CompanyID: 2, CityID: 1, Name: "Офис конкурента", Address: "Тверская ул., 5"},
}

// Шаблоны 2 и 3 привязаны к типу 4; тип 5 без шаблонов.
var checkTypesData = []checkTypeData{
	{ID: 1, CompanyID: 1, Name: "Пожарная безопасность"},
	{ID: 2, CompanyID: 1, Name: "Санитарная проверка"},
	{ID: 3, CompanyID: 2, Name: "Охрана труда"},
	{ID: 4, CompanyID: 1, Name: "Плановый аудит"},
	{ID: 5, CompanyID: 1, Name: "Внеплановый аудит"},
}

var templatesData = []templateData{
	{ID: 1, CompanyID: 1, CheckTypeID: 1, Name: "Огнетушители и выходы"},
	{ID: 2, CompanyID: 1, CheckTypeID: 4, Name: "Аудит склада"},
	{ID: 3, CompanyID: 1, CheckTypeID: 4, Name: "Аудит торгового зала"},
	{ID: 4, CompanyID: 2, CheckTypeID: 3, Name: "Рабочие места"},
}

var inspectorsData = []inspectorData{
	{ID: 1, CompanyID: 1, FirstName: "Иван", LastName: "Петров", Email: "petrov@example.com", Status: "invited"},
	{ID: 2, CompanyID: 1, FirstName: "Олег", LastName: "Сидоров", Email: "sidorov@example.com", Status: "rejected"},
	{ID: 3, CompanyID: 2, FirstName: "Анна", LastName: "Кузнецова", Email: "kuznetsova@example.com", Status: "approved"},
	{ID: 4, CompanyID: 1, FirstName: "Мария", LastName: "Иванова", Email: "ivanova@example.com", Status: "approved"},
}

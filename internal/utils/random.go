package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/parkampus-dev/parkampus/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonFirstNames = []string{
	"María", "Juan", "Carlos", "Ana", "Luis", "Laura", "Andrés", "Camila",
	"Santiago", "Valentina", "Pedro", "Sofía", "Diego", "Isabella", "Felipe",
	"Daniela", "Sebastián", "Gabriela", "Mateo", "Paula",
}

var commonLastNames = []string{
	"García", "Rodríguez", "Martínez", "López", "González", "Hernández",
	"Pérez", "Sánchez", "Ramírez", "Torres", "Flórez", "Castro", "Vargas",
	"Moreno", "Jiménez", "Rojas", "Mejía", "Cardona", "Ospina", "Restrepo",
}

func GenerateRandomFullName() (string, string) {
	return commonFirstNames[rand.Intn(len(commonFirstNames))],
		commonLastNames[rand.Intn(len(commonLastNames))]
}

var userTypes = []domain.UserType{
	domain.UserTypeEstudiante,
	domain.UserTypeCelador,
	domain.UserTypeEmpleado,
}

func GenerateRandomUserType() domain.UserType {
	return userTypes[rand.Intn(len(userTypes))]
}

var digits = "0123456789"

// normalizeForEmail quita tildes y pasa a minúsculas para armar la parte local
// del correo institucional.
func normalizeForEmail(s string) string {
	replacer := strings.NewReplacer(
		"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n",
		"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ñ", "n",
	)
	return strings.ToLower(replacer.Replace(s))
}

func GenerateEmailFromName(firstName, lastName, emailDomain string) string {
	local := normalizeForEmail(firstName) + "." + normalizeForEmail(lastName)

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		local += string(digits[rand.Intn(len(digits))])
	}

	return local + "@" + emailDomain
}

// GenerateRandomSchedule genera un horario de clases coherente: días sin
// repetir y bloques con inicio estrictamente anterior al fin.
func GenerateRandomSchedule() []domain.ScheduleEntry {
	days := []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

	for i := len(days) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		days[i], days[j] = days[j], days[i]
	}

	n := rand.Intn(5) + 1
	schedule := make([]domain.ScheduleEntry, 0, n)

	for _, day := range days[:n] {
		startHour := rand.Intn(12) + 6 // 06..17
		duration := rand.Intn(4) + 1   // 1..4 horas

		schedule = append(schedule, domain.ScheduleEntry{
			Day:       day,
			StartTime: fmt.Sprintf("%02d:%02d", startHour, rand.Intn(60)),
			EndTime:   fmt.Sprintf("%02d:00", startHour+duration),
		})
	}

	return schedule
}

func GenerateRandomUser(password string, emailDomain string) (*domain.User, error) {
	firstName, lastName := GenerateRandomFullName()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        GenerateEmailFromName(firstName, lastName, emailDomain),
		PasswordHash: string(passwordHash),
		UserType:     GenerateRandomUserType(),
		Schedule:     GenerateRandomSchedule(),
	}

	return user, nil
}

var parkingLotBlocks = []string{"A", "B", "C", "D", "E", "F"}

// GenerateRandomParkingLot genera un parqueadero que cumple el invariante de
// capacidad: los disponibles nunca superan el máximo.
func GenerateRandomParkingLot() *domain.ParkingLot {
	motoMax := int32(rand.Intn(120))
	carMax := int32(rand.Intn(300))

	var motoAvailable, carAvailable int32
	if motoMax > 0 {
		motoAvailable = int32(rand.Intn(int(motoMax) + 1))
	}
	if carMax > 0 {
		carAvailable = int32(rand.Intn(int(carMax) + 1))
	}

	return &domain.ParkingLot{
		Name:             fmt.Sprintf("Bloque %s - Piso %d", parkingLotBlocks[rand.Intn(len(parkingLotBlocks))], rand.Intn(5)+1),
		MotoAvailable:    motoAvailable,
		MotoMaxAvailable: motoMax,
		CarAvailable:     carAvailable,
		CarMaxAvailable:  carMax,
	}
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	randomPassword := make([]rune, length)
	for i := range randomPassword {
		randomPassword[i] = letters[rand.Intn(len(letters))]
	}
	return string(randomPassword)
}

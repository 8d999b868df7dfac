package outcome

import (
	"net/http"

	"github.com/Marco16005/pag-web-web/internal/gateway"
)

var Register = newTable(gateway.ProcRegisterUser, "Registration failed due to a database error.", map[Sentinel]Response{
	OK:              {Status: http.StatusCreated, Message: "User registered successfully."},
	EmailRegistered: {Status: http.StatusConflict, Message: "This email is already registered.", Field: "correo"},
	UsernameExists:  {Status: http.StatusConflict, Message: "This username is already taken.", Field: "nombre_usuario"},
	AgeBelowMinimum: {Status: http.StatusBadRequest, Message: "You must be at least {min_age} years old to register.", Field: "birthdate"},
})

var DeleteUser = newTable(gateway.ProcDeleteUser, "Failed to delete user.", map[Sentinel]Response{
	OK:                {Status: http.StatusOK, Message: "User {id} deleted successfully."},
	NotFound:          {Status: http.StatusNotFound, Message: "User {id} not found."},
	NoDeleteLastAdmin: {Status: http.StatusForbidden, Message: "Cannot delete the last administrator."},
})

var UpdateUser = newTable(gateway.ProcUpdateUser, "Failed to update user.", map[Sentinel]Response{
	OK:                    {Status: http.StatusOK, Message: "User {id} updated successfully."},
	NotFound:              {Status: http.StatusNotFound, Message: "User {id} not found."},
	EmailExists:           {Status: http.StatusConflict, Message: "Email '{email}' is already in use."},
	UsernameExists:        {Status: http.StatusConflict, Message: "Username '{username}' is already in use."},
	CannotDemoteLastAdmin: {Status: http.StatusForbidden, Message: "Cannot change the role of the last administrator."},
})

var UpdateMessageStatus = newTable(gateway.ProcUpdateMessageStatus, "Failed to update message status.", map[Sentinel]Response{
	OK:       {Status: http.StatusOK, Message: "Message {id} status updated to '{status}'."},
	NotFound: {Status: http.StatusNotFound, Message: "Message {id} not found."},
})

package task

import "encoding/json"

// Record is the raw task shape returned by the API. Flat display fields may
// be absent, in which case the nested reference objects carry the values;
// Normalize resolves the fallbacks.
type Record struct {
	ID            json.Number `json:"id"`
	Title         string      `json:"title"`
	Content       string      `json:"content"`
	ChassisNumber string      `json:"chassis_number"`
	Remark        string      `json:"remark"`
	CompFlag      int         `json:"comp_flg"`
	Completion    string      `json:"completion"`

	WorkID  int `json:"wo_id"`
	CarID   int `json:"ca_id"`
	ColorID int `json:"co_id"`
	UserID  int `json:"u_id"`
	AdminID int `json:"admin_id"`

	Work     *WorkRef     `json:"work"`
	CarModel *CarModelRef `json:"car_model"`
	Color    *ColorRef    `json:"color"`
	User     *UserRef     `json:"user"`
	Admin    *UserRef     `json:"admin"`

	Name      string `json:"name"`
	Code      string `json:"code"`
	UserName  string `json:"u_name"`
	AdminName string `json:"admin_name"`
}

// WorkRef is the nested work-type reference on a Record.
type WorkRef struct {
	ID      int    `json:"id"`
	Content string `json:"content"`
}

// CarModelRef is the nested car-model reference on a Record.
type CarModelRef struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
}

// ColorRef is the nested color reference on a Record.
type ColorRef struct {
	ID        int    `json:"id"`
	Code      string `json:"code"`
	ColorCode string `json:"color_code"`
}

// UserRef is the nested user reference on a Record, used for both the
// assigned user and the managing admin.
type UserRef struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Group int    `json:"group"`
}

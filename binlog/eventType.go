package binlog

import "fmt"

// EventType is the single byte tag in every event header naming the
// event's kind and body layout.
// https://dev.mysql.com/doc/internals/en/event-classes-and-types.html
type EventType byte

const (
	UNKNOWN_EVENT EventType = iota
	START_EVENT_V3
	QUERY_EVENT
	STOP_EVENT
	ROTATE_EVENT
	INTVAR_EVENT
	LOAD_EVENT
	SLAVE_EVENT
	CREATE_FILE_EVENT
	APPEND_BLOCK_EVENT
	EXEC_LOAD_EVENT
	DELETE_FILE_EVENT
	NEW_LOAD_EVENT
	RAND_EVENT
	USER_VAR_EVENT
	FORMAT_DESCRIPTION_EVENT
	XID_EVENT
	BEGIN_LOAD_QUERY_EVENT
	EXECUTE_LOAD_QUERY_EVENT
	TABLE_MAP_EVENT
	WRITE_ROWS_EVENTv0
	UPDATE_ROWS_EVENTv0
	DELETE_ROWS_EVENTv0
	WRITE_ROWS_EVENTv1
	UPDATE_ROWS_EVENTv1
	DELETE_ROWS_EVENTv1
	INCIDENT_EVENT
	HEARTBEAT_EVENT
	IGNORABLE_EVENT
	ROWS_QUERY_EVENT
	WRITE_ROWS_EVENTv2
	UPDATE_ROWS_EVENTv2
	DELETE_ROWS_EVENTv2
	GTID_EVENT
	ANONYMOUS_GTID_EVENT
	PREVIOUS_GTIDS_EVENT
)

// TypeFromByte maps a wire byte to its event type. The mapping is total:
// codes past the known table come back as UNKNOWN_EVENT, so a log written
// by a newer server still header-parses.
func TypeFromByte(b byte) EventType {
	if b > byte(PREVIOUS_GTIDS_EVENT) {
		return UNKNOWN_EVENT
	}
	return EventType(b)
}

var eventTypeNames = map[EventType]string{
	UNKNOWN_EVENT:            "UNKNOWN_EVENT",
	START_EVENT_V3:           "START_EVENT_V3",
	QUERY_EVENT:              "QUERY_EVENT",
	STOP_EVENT:               "STOP_EVENT",
	ROTATE_EVENT:             "ROTATE_EVENT",
	INTVAR_EVENT:             "INTVAR_EVENT",
	LOAD_EVENT:               "LOAD_EVENT",
	SLAVE_EVENT:              "SLAVE_EVENT",
	CREATE_FILE_EVENT:        "CREATE_FILE_EVENT",
	APPEND_BLOCK_EVENT:       "APPEND_BLOCK_EVENT",
	EXEC_LOAD_EVENT:          "EXEC_LOAD_EVENT",
	DELETE_FILE_EVENT:        "DELETE_FILE_EVENT",
	NEW_LOAD_EVENT:           "NEW_LOAD_EVENT",
	RAND_EVENT:               "RAND_EVENT",
	USER_VAR_EVENT:           "USER_VAR_EVENT",
	FORMAT_DESCRIPTION_EVENT: "FORMAT_DESCRIPTION_EVENT",
	XID_EVENT:                "XID_EVENT",
	BEGIN_LOAD_QUERY_EVENT:   "BEGIN_LOAD_QUERY_EVENT",
	EXECUTE_LOAD_QUERY_EVENT: "EXECUTE_LOAD_QUERY_EVENT",
	TABLE_MAP_EVENT:          "TABLE_MAP_EVENT",
	WRITE_ROWS_EVENTv0:       "WRITE_ROWS_EVENTv0",
	UPDATE_ROWS_EVENTv0:      "UPDATE_ROWS_EVENTv0",
	DELETE_ROWS_EVENTv0:      "DELETE_ROWS_EVENTv0",
	WRITE_ROWS_EVENTv1:       "WRITE_ROWS_EVENTv1",
	UPDATE_ROWS_EVENTv1:      "UPDATE_ROWS_EVENTv1",
	DELETE_ROWS_EVENTv1:      "DELETE_ROWS_EVENTv1",
	INCIDENT_EVENT:           "INCIDENT_EVENT",
	HEARTBEAT_EVENT:          "HEARTBEAT_EVENT",
	IGNORABLE_EVENT:          "IGNORABLE_EVENT",
	ROWS_QUERY_EVENT:         "ROWS_QUERY_EVENT",
	WRITE_ROWS_EVENTv2:       "WRITE_ROWS_EVENTv2",
	UPDATE_ROWS_EVENTv2:      "UPDATE_ROWS_EVENTv2",
	DELETE_ROWS_EVENTv2:      "DELETE_ROWS_EVENTv2",
	GTID_EVENT:               "GTID_EVENT",
	ANONYMOUS_GTID_EVENT:     "ANONYMOUS_GTID_EVENT",
	PREVIOUS_GTIDS_EVENT:     "PREVIOUS_GTIDS_EVENT",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_EVENT(%d)", byte(t))
}

package directory

import "voice_access/recognition"

// describe текст ошибки для пользователя: сообщение сервиса или описание ошибки транспорта
func describe(err error) string {
	if apiErr, ok := recognition.IsAPIError(err); ok {
		return apiErr.Message
	}

	return err.Error()
}

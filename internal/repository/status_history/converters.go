package status_history

import "shipping/internal/entities"

func ToDomainList(recordsDB []RecordDB) []entities.PackageStatusRecord {
	if len(recordsDB) == 0 {
		return []entities.PackageStatusRecord{}
	}

	result := make([]entities.PackageStatusRecord, len(recordsDB))
	for i, recordDB := range recordsDB {
		result[i] = entities.PackageStatusRecord{
			EventID:        recordDB.EventID,
			PackageID:      recordDB.PackageID,
			TrackingNumber: recordDB.TrackingNumber,
			Status:         entities.PackageStatus(recordDB.Status),
			ChangedAt:      recordDB.ChangedAt,
			RecordedAt:     recordDB.RecordedAt,
		}
	}
	return result
}
